// Package chunker provides fixed-size text chunking with overlap.
package chunker

import (
	"context"
	"fmt"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 100

// Window is one fixed-size slice of the input text.
type Window struct {
	// Text is the window's content.
	Text string

	// Index is the ordinal position, starting at 0.
	Index int

	// StartOffset is the byte offset of the window within the input.
	StartOffset int
}

// Split cuts text into windows of size characters, advancing the start by
// size-overlap characters each step. Windowing counts runes, not bytes, so
// a boundary never lands inside a multi-byte character and every window is
// valid UTF-8. The final window may be shorter than size. Identical input
// always produces identical output.
//
// Fails with domain.ErrInvalidInput when size <= 0, overlap < 0, or
// overlap >= size.
func Split(text string, size, overlap int) ([]Window, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", domain.ErrInvalidInput, size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("%w: overlap must be in [0, size), got size=%d overlap=%d",
			domain.ErrInvalidInput, size, overlap)
	}
	if text == "" {
		return nil, nil
	}

	runes := []rune(text)

	// Byte offset of each rune start, so StartOffset stays a byte offset
	// into the original text.
	byteOffsets := make([]int, 0, len(runes))
	for i := range text {
		byteOffsets = append(byteOffsets, i)
	}

	step := size - overlap
	windows := make([]Window, 0, len(runes)/step+1)

	for start, index := 0, 0; start < len(runes); start, index = start+step, index+1 {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		windows = append(windows, Window{
			Text:        string(runes[start:end]),
			Index:       index,
			StartOffset: byteOffsets[start],
		})
	}

	return windows, nil
}

// Processor splits document content into fixed-size chunks.
// It implements the PostProcessor interface.
type Processor struct {
	chunkSize int
	overlap   int
}

// New creates a chunking processor. It validates the parameters once at
// construction with the same rules as Split.
func New(size, overlap int) (*Processor, error) {
	if _, err := Split("x", size, overlap); err != nil {
		return nil, err
	}
	return &Processor{chunkSize: size, overlap: overlap}, nil
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "chunker"
}

// Process splits the document content into chunks. Input chunks are
// ignored; this processor creates new chunks from document content.
// Chunk IDs derive from the document filename and window index, so
// re-processing the same file yields the same IDs.
func (p *Processor) Process(_ context.Context, doc *domain.Document, _ []domain.Chunk) ([]domain.Chunk, error) {
	windows, err := Split(doc.Content, p.chunkSize, p.overlap)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return nil, nil
	}

	chunks := make([]domain.Chunk, len(windows))
	for i, w := range windows {
		chunks[i] = domain.Chunk{
			ID:          domain.ChunkRecordID(doc.Filename, w.Index),
			DocumentID:  doc.ID,
			Content:     w.Text,
			Position:    w.Index,
			StartOffset: w.StartOffset,
			Metadata: map[string]any{
				"source": doc.Filename,
			},
		}
	}
	return chunks, nil
}
