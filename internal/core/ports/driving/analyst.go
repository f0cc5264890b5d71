package driving

import (
	"context"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/domain"
)

// Analyst answers questions about the indexed minutes with a sentiment
// classification, conditioning the model on retrieved context.
type Analyst interface {
	// Retrieve returns the top-k stored chunk texts most similar to the
	// question, in rank order. An empty store yields an empty slice, not
	// an error.
	Retrieve(ctx context.Context, question string, k int) ([]string, error)

	// Ask retrieves context for the question and generates an answer.
	// With no indexed context the answer states that information is
	// missing; no sentiment is fabricated.
	Ask(ctx context.Context, question string) (*domain.Analysis, error)
}
