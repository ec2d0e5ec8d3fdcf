package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	httpadapter "resume-studio/internal/adapter/http"
	repo "resume-studio/internal/adapter/repository"
	"resume-studio/internal/config"
	"resume-studio/internal/export"
	"resume-studio/internal/infrastructure/migration"
	"resume-studio/internal/layout"
	"resume-studio/pkg/ai"
	infra "resume-studio/pkg/infrastructure"
	"resume-studio/pkg/logging"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer logger.Sync()

	ctx := context.Background()

	// a missing store degrades to preview/export only, it does not stop the server
	pool, err := infra.NewResumesPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Warn("resume store not available", "error", err)
		pool = nil
	}
	if pool != nil {
		defer pool.Close()
		if err := migration.RunMigrations(ctx, pool, logger); err != nil {
			logger.Error("migrations failed", "error", err)
			os.Exit(1)
		}
	}

	gen, err := ai.NewClient(cfg.Ollama)
	if err != nil {
		logger.Error("failed to build text generation client", "error", err)
		os.Exit(1)
	}

	resumes := repo.NewResumesRepo(pool)
	exporter := export.New(infra.NewChromedpCapture(cfg.ChromePath), logger)
	h := httpadapter.NewHandler(resumes, gen, exporter, layout.Letter(), logger)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	h.Routes(app)

	go func() {
		logger.Info("server listening", "addr", cfg.Addr)
		if err := app.Listen(cfg.Addr); err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down", "timeout", cfg.ShutdownTimeout.String())
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
