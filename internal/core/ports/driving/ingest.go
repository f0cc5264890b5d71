package driving

import "context"

// IngestReport summarises one ingestion run.
type IngestReport struct {
	// Documents is the number of documents processed.
	Documents int

	// Chunks is the total number of chunk records written.
	Chunks int

	// Skipped lists files that were skipped with the reason.
	Skipped map[string]string
}

// Ingestor loads source documents, chunks and embeds them, and writes the
// resulting records to the vector store.
type Ingestor interface {
	// IngestDir ingests every supported file in dir. Fails with
	// domain.ErrNoDocuments when dir contains nothing to process.
	IngestDir(ctx context.Context, dir string) (*IngestReport, error)

	// IngestFile ingests a single file. The write is all-or-nothing: if
	// embedding fails partway through, no records for the file are stored.
	IngestFile(ctx context.Context, path string) (*IngestReport, error)
}
