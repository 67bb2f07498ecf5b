package ollama

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/vbonduro/plantid/internal/vision"
)

type generateRequest struct {
	Model  string   `json:"model"`
	Prompt string   `json:"prompt"`
	Images []string `json:"images"`
	Stream bool     `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

type OllamaIdentifier struct {
	model  string
	client *resty.Client
}

func NewOllamaIdentifier(host, model string) *OllamaIdentifier {
	return &OllamaIdentifier{
		model: model,
		client: resty.New().
			SetBaseURL(host).
			SetHeader("Content-Type", "application/json"),
	}
}

func (a *OllamaIdentifier) Identify(ctx context.Context, sub vision.Submission) (*vision.Result, error) {
	var out generateResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(generateRequest{
			Model:  a.model,
			Prompt: sub.Prompt,
			Images: []string{sub.Data},
			Stream: false,
		}).
		SetResult(&out).
		Post("/api/generate")
	if err != nil {
		return nil, fmt.Errorf("failed to call ollama: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("ollama returned status %d: %s", resp.StatusCode(), resp.String())
	}

	return vision.NewResult(out.Response), nil
}
