package pipeline

import (
	"context"
	"errors"

	"github.com/glamai/server/internal/gemini"
)

// Status is the terminal state of one pipeline run.
type Status string

const (
	// a styled image came back and was committed
	StatusSuccess Status = "SUCCESS"
	// the provider replied but no image part was found in any candidate
	StatusNoUsableOutput Status = "NO_USABLE_OUTPUT"
	// the attempt failed in a way worth retrying (network, 429, 5xx)
	StatusTransientError Status = "TRANSIENT_ERROR"
	// the request as sent will never succeed (bad input, provider 4xx)
	StatusPermanentError Status = "PERMANENT_ERROR"
)

// Outcome is the result of a pipeline run. Image is set only on success;
// Detail carries a user-facing explanation otherwise.
type Outcome struct {
	Status Status
	Image  *gemini.Image
	Detail string
}

// ErrBusy rejects a submission while the owner already has a run in flight.
var ErrBusy = errors.New("a transformation is already in progress")

// Invoker is the slice of the provider client the pipeline needs; faked in
// tests.
type Invoker interface {
	GenerateImage(ctx context.Context, instruction string, image []byte, mimeType string) (*gemini.GenerateContentResponse, error)
}

// TransformRequest asks for a full hairstyle transformation.
type TransformRequest struct {
	Image    []byte
	MIMEType string
	Style    string
	Color    string // optional hair color
	Audience string // "woman" or "man", used in prompt wording
	Enhance  bool   // run technical photo optimization before styling
}

// RecolorRequest re-colors an already generated look. An empty Color asks for
// a restore to a natural shade.
type RecolorRequest struct {
	Image    []byte
	MIMEType string
	Color    string
}
