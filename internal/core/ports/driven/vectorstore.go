package driven

import (
	"context"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/domain"
)

// VectorStore persists (id, vector, text, metadata) records and supports
// nearest-neighbour query by vector.
//
// Record IDs are stable across re-ingestion (see domain.ChunkRecordID), and
// Add upserts: writing an existing ID overwrites the stored record. The
// similarity metric is cosine similarity.
type VectorStore interface {
	// Add appends or overwrites records in one transaction.
	Add(ctx context.Context, chunks []domain.Chunk) error

	// Query returns up to k stored records nearest to the query vector,
	// ranked by cosine similarity descending. It fails with
	// domain.ErrEmptyStore only when zero records exist; a store holding
	// fewer than k records returns them all.
	Query(ctx context.Context, vector []float32, k int) ([]domain.ScoredChunk, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)

	// Sources returns the number of stored records per source filename.
	Sources(ctx context.Context) (map[string]int, error)

	// Clear removes all records.
	Clear(ctx context.Context) error

	// Close releases resources.
	Close() error
}
