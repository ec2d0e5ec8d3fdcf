package migration

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"resume-studio/pkg/logging"
)

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log *logging.Logger) error {
	log.Info("starting database migrations")

	migrations := []Migration{
		{Name: "create_resumes_table", Up: createResumesTable},
		{Name: "add_template_to_resumes", Up: addTemplateToResumes},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			log.Error("migration failed", "name", m.Name, "error", err)
			return err
		}
		log.Info("migration completed", "name", m.Name)
	}

	log.Info("all migrations completed")
	return nil
}

func createResumesTable(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS resumes (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			data JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS resumes_user_id_idx ON resumes (user_id);
	`
	_, err := pool.Exec(ctx, query)
	return err
}

// addTemplateToResumes adds the template column if it doesn't exist
func addTemplateToResumes(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		ALTER TABLE resumes
		ADD COLUMN IF NOT EXISTS template TEXT NOT NULL DEFAULT 'modern';
	`
	_, err := pool.Exec(ctx, query)
	return err
}
