package postprocessors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/domain"
)

type stubProcessor struct {
	name   string
	chunks []domain.Chunk
	err    error
}

func (s *stubProcessor) Name() string { return s.name }

func (s *stubProcessor) Process(_ context.Context, _ *domain.Document, _ []domain.Chunk) ([]domain.Chunk, error) {
	return s.chunks, s.err
}

func TestPipeline_RunsProcessorsInOrder(t *testing.T) {
	want := []domain.Chunk{{ID: "doc.pdf_chunk_0", Content: "hello"}}
	p := NewPipeline(
		&stubProcessor{name: "first", chunks: []domain.Chunk{{ID: "ignored"}}},
		&stubProcessor{name: "second", chunks: want},
	)

	chunks, err := p.Process(context.Background(), &domain.Document{Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, want, chunks)
}

func TestPipeline_NilDocument(t *testing.T) {
	p := NewPipeline()
	_, err := p.Process(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPipeline_WrapsProcessorError(t *testing.T) {
	boom := errors.New("boom")
	p := NewPipeline(&stubProcessor{name: "exploder", err: boom})

	_, err := p.Process(context.Background(), &domain.Document{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "exploder")
}
