package vision

import "encoding/base64"

// Submission is the payload for a single identification call: the fixed
// prompt plus the image as base64 alongside its media type.
type Submission struct {
	Prompt    string
	MediaType string
	Data      string

	raw []byte
}

// NewSubmission packages image for an outbound call. It performs no size or
// format validation and is a pure function of its inputs.
func NewSubmission(image []byte, mediaType string) Submission {
	return Submission{
		Prompt:    IdentifyPrompt,
		MediaType: mediaType,
		Data:      base64.StdEncoding.EncodeToString(image),
		raw:       image,
	}
}

// Raw returns the unencoded image bytes.
func (s Submission) Raw() []byte {
	return s.raw
}
