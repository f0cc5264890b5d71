package domain

import (
	"fmt"
	"time"
)

// RawDocument represents opaque bytes read from a source (filesystem or
// download) before normalisation.
type RawDocument struct {
	// URI is the original location (file path or URL).
	URI string

	// Filename is the base name used to derive chunk record IDs.
	Filename string

	// MIMEType is the content type (e.g., "application/pdf").
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Metadata contains source-specific key-value pairs.
	Metadata map[string]any
}

// Document is the canonical representation after text extraction.
// It is immutable once created and consumed exactly once by chunking.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Filename is the source file's base name (e.g., "fomcminutes20250129.pdf").
	Filename string

	// URI is the original location.
	URI string

	// Content is the full extracted text, pages concatenated in order.
	Content string

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// CreatedAt is when the document was ingested.
	CreatedAt time.Time
}

// Chunk is a fixed-size window of a document's text, the unit of embedding
// and retrieval.
type Chunk struct {
	// ID is the stable record identifier, derived as
	// "{filename}_chunk_{position}" (see ChunkRecordID).
	ID string

	// DocumentID links to the parent Document.
	DocumentID string

	// Content is the text of this chunk.
	Content string

	// Position is the ordinal position within the document, starting at 0.
	Position int

	// StartOffset is the byte offset of the chunk within the document text.
	StartOffset int

	// Embedding is the vector representation for similarity search.
	Embedding []float32

	// Metadata contains chunk-specific key-value pairs. Ingestion always
	// sets "source" to the originating filename.
	Metadata map[string]any
}

// ScoredChunk is a retrieval result: a stored chunk's text with its
// similarity score.
type ScoredChunk struct {
	// ID is the matched chunk's record identifier.
	ID string

	// Content is the stored chunk text.
	Content string

	// Source is the originating filename.
	Source string

	// Score is the cosine similarity to the query vector, descending rank.
	Score float64
}

// ChunkRecordID derives the stable vector-store key for a chunk.
// Re-ingesting the same file yields the same IDs, so ingestion overwrites
// rather than duplicates.
func ChunkRecordID(filename string, position int) string {
	return fmt.Sprintf("%s_chunk_%d", filename, position)
}
