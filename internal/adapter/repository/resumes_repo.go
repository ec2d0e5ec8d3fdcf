package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"resume-studio/internal/domain"
	"resume-studio/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var (
	ErrNotFound    = errors.New("resume not found")
	ErrUnavailable = errors.New("resume store not available")
)

type ResumesRepo struct {
	pool *pgxpool.Pool
}

func NewResumesRepo(pool *pgxpool.Pool) *ResumesRepo {
	return &ResumesRepo{pool: pool}
}

// Save upserts a resume record. With no pool configured the save is a
// silent no-op so a store-less deployment can still preview and export.
func (r *ResumesRepo) Save(ctx context.Context, res *domain.Resume) error {
	if r.pool == nil {
		return nil
	}

	dataB, err := json.Marshal(res.Data)
	if err != nil {
		return fmt.Errorf("marshaling resume data: %w", err)
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO resumes (id, user_id, title, template, data, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET user_id = EXCLUDED.user_id, title = EXCLUDED.title, template = EXCLUDED.template, data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		res.ID, res.UserID, res.Title, res.Template, dataB, res.CreatedAt, res.UpdatedAt)
	return err
}

func (r *ResumesRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Resume, error) {
	if r.pool == nil {
		return nil, ErrUnavailable
	}

	var res domain.Resume
	var dataB []byte
	err := r.pool.QueryRow(ctx, `SELECT id, user_id, title, template, data, created_at, updated_at FROM resumes WHERE id = $1`, id).
		Scan(&res.ID, &res.UserID, &res.Title, &res.Template, &dataB, &res.CreatedAt, &res.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	// decode through the normalizer so legacy records come back canonical
	data, err := model.DecodeResumeData(dataB)
	if err != nil {
		return nil, err
	}
	res.Data = data
	return &res, nil
}

func (r *ResumesRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Resume, error) {
	if r.pool == nil {
		return nil, ErrUnavailable
	}

	rows, err := r.pool.Query(ctx, `SELECT id, user_id, title, template, data, created_at, updated_at FROM resumes WHERE user_id = $1 ORDER BY updated_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Resume{}
	for rows.Next() {
		var res domain.Resume
		var dataB []byte
		if err := rows.Scan(&res.ID, &res.UserID, &res.Title, &res.Template, &dataB, &res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, err
		}
		data, err := model.DecodeResumeData(dataB)
		if err != nil {
			return nil, err
		}
		res.Data = data
		out = append(out, &res)
	}
	return out, rows.Err()
}

func (r *ResumesRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.pool == nil {
		return ErrUnavailable
	}
	_, err := r.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	return err
}
