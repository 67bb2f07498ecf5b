package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vbonduro/plantid/internal/config"
	"github.com/vbonduro/plantid/internal/vision"
	claudevision "github.com/vbonduro/plantid/internal/vision/claude"
	geminivision "github.com/vbonduro/plantid/internal/vision/gemini"
	ollamavision "github.com/vbonduro/plantid/internal/vision/ollama"
)

const (
	Gemini = "gemini"
	Claude = "claude"
	Ollama = "ollama"
)

var ErrMissingAPIKey = errors.New("missing API key")

// New builds the identifier selected by cfg.VisionBackend. The returned
// close func releases client resources and is never nil.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (vision.Identifier, func(), error) {
	noop := func() {}

	switch cfg.VisionBackend {
	case Gemini:
		if cfg.GoogleAPIKey == "" {
			return nil, noop, fmt.Errorf("%w: GOOGLE_API_KEY is required when VISION_BACKEND=gemini", ErrMissingAPIKey)
		}
		g, err := geminivision.NewGeminiIdentifier(ctx, cfg.GoogleAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("using Gemini vision backend", "model", cfg.GeminiModel)
		return g, func() {
			if err := g.Close(); err != nil {
				logger.Error("failed to close gemini client", "error", err)
			}
		}, nil
	case Claude:
		if cfg.ClaudeAPIKey == "" {
			return nil, noop, fmt.Errorf("%w: CLAUDE_API_KEY is required when VISION_BACKEND=claude", ErrMissingAPIKey)
		}
		logger.Info("using Claude vision backend", "model", cfg.ClaudeModel)
		return claudevision.NewClaudeIdentifier(cfg.ClaudeAPIKey, cfg.ClaudeModel), noop, nil
	case Ollama:
		logger.Info("using Ollama vision backend", "host", cfg.OllamaHost, "model", cfg.OllamaModel)
		return ollamavision.NewOllamaIdentifier(cfg.OllamaHost, cfg.OllamaModel), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown vision backend %q", cfg.VisionBackend)
	}
}
