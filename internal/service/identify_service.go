package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vbonduro/plantid/internal/domain"
	"github.com/vbonduro/plantid/internal/vision"
)

type IdentifyService struct {
	identifier vision.Identifier
	backend    string
	logger     *slog.Logger
}

func NewIdentifyService(identifier vision.Identifier, backend string, logger *slog.Logger) *IdentifyService {
	return &IdentifyService{
		identifier: identifier,
		backend:    backend,
		logger:     logger,
	}
}

// Identify submits one image to the configured model and returns the parsed
// plant fields. Any failure from the model is returned unclassified.
func (s *IdentifyService) Identify(ctx context.Context, imageData []byte, mediaType string) (*domain.PlantInfo, error) {
	start := time.Now()
	s.logger.InfoContext(ctx, "identify started",
		"backend", s.backend,
		"mime_type", mediaType,
		"bytes", len(imageData),
	)

	result, err := s.identifier.Identify(ctx, vision.NewSubmission(imageData, mediaType))
	if err != nil {
		return nil, fmt.Errorf("failed to identify plant: %w", err)
	}

	s.logger.DebugContext(ctx, "model response", "backend", s.backend, "raw", result.RawResponse)
	s.logger.InfoContext(ctx, "identify complete",
		"backend", s.backend,
		"name", result.Plant.Name,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	plant := result.Plant
	return &plant, nil
}
