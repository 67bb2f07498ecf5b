package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/vbonduro/plantid/internal/vision"
)

// generator is the subset of *genai.GenerativeModel the identifier needs.
type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type GeminiIdentifier struct {
	client *genai.Client
	model  generator
}

// NewGeminiIdentifier creates a Gemini API client authenticated with apiKey.
// Callers must Close the identifier when done.
func NewGeminiIdentifier(ctx context.Context, apiKey, model string, opts ...option.ClientOption) (*GeminiIdentifier, error) {
	client, err := genai.NewClient(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiIdentifier{
		client: client,
		model:  client.GenerativeModel(model),
	}, nil
}

func (g *GeminiIdentifier) Identify(ctx context.Context, sub vision.Submission) (*vision.Result, error) {
	resp, err := g.model.GenerateContent(ctx,
		genai.Text(sub.Prompt),
		genai.Blob{MIMEType: sub.MediaType, Data: sub.Raw()},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to call gemini: %w", err)
	}

	text, ok := responseText(resp)
	if !ok {
		return nil, vision.ErrNoCandidates
	}
	return vision.NewResult(text), nil
}

func (g *GeminiIdentifier) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", false
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String(), true
}
