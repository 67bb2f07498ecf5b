package main

import (
	"context"
	"log"
	"os"

	"github.com/vbonduro/plantid/internal/config"
	"github.com/vbonduro/plantid/internal/logging"
	"github.com/vbonduro/plantid/internal/service"
	"github.com/vbonduro/plantid/internal/vision/backend"
	"github.com/vbonduro/plantid/internal/web"
	"github.com/vbonduro/plantid/internal/web/templates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	logger.Info("config loaded", "config", cfg)

	identifier, closeIdentifier, err := backend.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to initialize vision backend", "error", err)
		cleanup()
		os.Exit(1)
	}
	defer closeIdentifier()

	svc := service.NewIdentifyService(identifier, cfg.VisionBackend, logger)
	server := web.NewServer(svc, templates.FS, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}
