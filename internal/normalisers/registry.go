// Package normalisers provides text extraction for source document formats.
package normalisers

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/domain"
	"github.com/fedwatch-labs/fedwatch-cli/internal/core/ports/driven"
)

// Registry dispatches raw documents to the normaliser registered for their
// MIME type.
type Registry struct {
	byMIME map[string]driven.Normaliser
}

// NewRegistry creates a registry with the given normalisers.
func NewRegistry(normalisers ...driven.Normaliser) *Registry {
	r := &Registry{byMIME: make(map[string]driven.Normaliser)}
	for _, n := range normalisers {
		r.Register(n)
	}
	return r
}

// Register adds a normaliser for each of its supported MIME types.
// A later registration for the same MIME type replaces the earlier one.
func (r *Registry) Register(n driven.Normaliser) {
	for _, mt := range n.SupportedMIMETypes() {
		r.byMIME[mt] = n
	}
}

// Normalise extracts text from a raw document using the normaliser for its
// MIME type. When MIMEType is unset it is guessed from the URI extension.
func (r *Registry) Normalise(ctx context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	mimeType := raw.MIMEType
	if mimeType == "" {
		mimeType = GuessMIMEType(raw.URI)
	}

	n, ok := r.byMIME[mimeType]
	if !ok {
		return nil, fmt.Errorf("%w: no normaliser for %q", domain.ErrNotFound, mimeType)
	}
	return n.Normalise(ctx, raw)
}

// SupportedMIMETypes returns all MIME types that can be normalised.
func (r *Registry) SupportedMIMETypes() []string {
	types := make([]string, 0, len(r.byMIME))
	for mt := range r.byMIME {
		types = append(types, mt)
	}
	return types
}

// GuessMIMEType infers a MIME type from the path extension, stripping any
// charset parameter. Unknown extensions map to application/octet-stream.
func GuessMIMEType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".pdf" {
		return "application/pdf"
	}
	if mt := mime.TypeByExtension(ext); mt != "" {
		if idx := strings.Index(mt, ";"); idx >= 0 {
			mt = strings.TrimSpace(mt[:idx])
		}
		return mt
	}
	return "application/octet-stream"
}
