package driven

import (
	"context"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/domain"
)

// PostProcessor transforms a document's chunks during ingestion.
// The first processor in a pipeline receives nil chunks and creates them;
// later processors receive and may modify them.
type PostProcessor interface {
	// Name returns the processor name for error reporting.
	Name() string

	// Process produces or transforms chunks for the document.
	Process(ctx context.Context, doc *domain.Document, chunks []domain.Chunk) ([]domain.Chunk, error)
}

// PostProcessorPipeline runs an ordered chain of post-processors.
type PostProcessorPipeline interface {
	Process(ctx context.Context, doc *domain.Document) ([]domain.Chunk, error)
}
