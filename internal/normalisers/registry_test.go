package normalisers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/domain"
	"github.com/fedwatch-labs/fedwatch-cli/internal/core/ports/driven"
	"github.com/fedwatch-labs/fedwatch-cli/internal/normalisers/plaintext"
)

func TestGuessMIMEType(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{path: "/data/fomcminutes20250129.pdf", expected: "application/pdf"},
		{path: "minutes.PDF", expected: "application/pdf"},
		{path: "/data/notes.txt", expected: "text/plain"},
		{path: "/data/blob", expected: "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, GuessMIMEType(tt.path))
		})
	}
}

func TestRegistry_DispatchesByMIMEType(t *testing.T) {
	registry := NewRegistry(plaintext.New())

	result, err := registry.Normalise(context.Background(), &domain.RawDocument{
		URI:     "/data/minutes.txt",
		Content: []byte("some text"),
	})
	require.NoError(t, err)
	assert.Equal(t, "some text", result.Document.Content)
}

func TestRegistry_UnknownMIMEType(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Normalise(context.Background(), &domain.RawDocument{
		URI: "/data/blob.bin",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistry_NilDocument(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistry_SupportedMIMETypes(t *testing.T) {
	var _ driven.Normaliser = plaintext.New()

	registry := NewRegistry(plaintext.New())
	assert.Contains(t, registry.SupportedMIMETypes(), "text/plain")
}
