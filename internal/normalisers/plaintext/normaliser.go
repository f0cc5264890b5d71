// Package plaintext provides a normaliser for plain text documents.
package plaintext

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/domain"
	"github.com/fedwatch-labs/fedwatch-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text documents, such as pre-extracted minutes.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/plain"}
}

// Normalise converts a raw document to a normalised document. The content
// is the raw bytes as-is.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	filename := raw.Filename
	if filename == "" {
		filename = filepath.Base(raw.URI)
	}

	doc := domain.Document{
		ID:        uuid.New().String(),
		Filename:  filename,
		URI:       raw.URI,
		Content:   string(raw.Content),
		Metadata:  map[string]any{"format": "text"},
		CreatedAt: time.Now(),
	}

	return &driven.NormaliseResult{Document: doc}, nil
}
