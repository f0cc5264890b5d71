package driven

import (
	"context"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/domain"
)

// Normaliser transforms raw documents into extracted-text form.
// Each normaliser handles specific MIME types (e.g., PDF, plain text).
type Normaliser interface {
	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// Normalise extracts text from a raw document. Chunking is handled by
	// the post-processor pipeline, not here.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*NormaliseResult, error)
}

// NormaliseResult contains the output of normalisation.
type NormaliseResult struct {
	// Document is the normalised document with Content populated.
	Document domain.Document
}
