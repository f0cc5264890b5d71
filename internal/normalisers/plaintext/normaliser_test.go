package plaintext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/domain"
)

func TestNormalise(t *testing.T) {
	n := New()

	result, err := n.Normalise(context.Background(), &domain.RawDocument{
		URI:     "/data/minutes.txt",
		Content: []byte("The Committee discussed inflation."),
	})
	require.NoError(t, err)

	assert.Equal(t, "The Committee discussed inflation.", result.Document.Content)
	assert.Equal(t, "minutes.txt", result.Document.Filename)
}

func TestNormalise_NilDocument(t *testing.T) {
	n := New()

	result, err := n.Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, result)
}
