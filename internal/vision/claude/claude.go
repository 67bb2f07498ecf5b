package claude

import (
	"context"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"

	"github.com/vbonduro/plantid/internal/vision"
)

// maxTokens comfortably covers five short labelled fields.
const maxTokens = 1024

type ClaudeIdentifier struct {
	client *anthropic.Client
	model  string
}

// Option customises the underlying Anthropic client.
type Option func(*[]anthropic.ClientOption)

// WithBaseURL points the client at a different Messages API root.
func WithBaseURL(url string) Option {
	return func(opts *[]anthropic.ClientOption) {
		*opts = append(*opts, anthropic.WithBaseURL(url))
	}
}

func NewClaudeIdentifier(apiKey, model string, opts ...Option) *ClaudeIdentifier {
	var clientOpts []anthropic.ClientOption
	for _, o := range opts {
		o(&clientOpts)
	}
	return &ClaudeIdentifier{
		client: anthropic.NewClient(apiKey, clientOpts...),
		model:  model,
	}
}

// buildRequest constructs the Messages API request for a submission.
func (c *ClaudeIdentifier) buildRequest(sub vision.Submission) anthropic.MessagesRequest {
	return anthropic.MessagesRequest{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.Message{{
			Role: anthropic.RoleUser,
			Content: []anthropic.MessageContent{
				anthropic.NewImageMessageContent(anthropic.NewMessageContentSource(
					anthropic.MessagesContentSourceTypeBase64,
					normaliseMIME(sub.MediaType),
					sub.Data,
				)),
				anthropic.NewTextMessageContent(sub.Prompt),
			},
		}},
	}
}

func (c *ClaudeIdentifier) Identify(ctx context.Context, sub vision.Submission) (*vision.Result, error) {
	resp, err := c.client.CreateMessages(ctx, c.buildRequest(sub))
	if err != nil {
		return nil, fmt.Errorf("failed to call claude: %w", err)
	}
	if len(resp.Content) == 0 {
		return nil, vision.ErrNoCandidates
	}
	return vision.NewResult(resp.GetFirstContentText()), nil
}

// normaliseMIME maps declared upload types to the values the Anthropic API
// accepts. The API takes only jpeg, png, gif, and webp; anything else is sent
// as jpeg and left for the API to reject.
func normaliseMIME(mimeType string) string {
	switch mimeType {
	case "image/png", "image/gif", "image/webp":
		return mimeType
	default:
		return "image/jpeg"
	}
}
