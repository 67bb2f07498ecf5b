package vision

import (
	"context"
	"errors"

	"github.com/vbonduro/plantid/internal/domain"
)

// IdentifyPrompt is the shared instruction sent with every photo. The field
// extractor depends on the literal "Label: value" format requested here.
const IdentifyPrompt = `Identify this plant and provide information about it in the following format: Name: [plant name], Scientific Name: [scientific name], Description: [brief description], Care: [care instructions], Fun Fact: [interesting fact about the plant]`

// ErrNoCandidates is returned when a backend answers without any content.
var ErrNoCandidates = errors.New("model returned no candidates")

// Identifier sends a submission to a hosted multimodal model and returns the
// parsed answer.
type Identifier interface {
	Identify(ctx context.Context, sub Submission) (*Result, error)
}

type Result struct {
	Plant       domain.PlantInfo
	RawResponse string
}

// NewResult parses raw into a Result.
func NewResult(raw string) *Result {
	return &Result{
		Plant:       ParseResponse(raw),
		RawResponse: raw,
	}
}
