package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input, such as
	// chunking parameters with overlap >= size.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoDocuments indicates ingestion was invoked with nothing to
	// process. This aborts the run with a clear message.
	ErrNoDocuments = errors.New("no source documents found")

	// ErrEmptyStore indicates a similarity query against a store that
	// holds zero records. A store with fewer than k records is not an
	// error; it simply returns fewer results.
	ErrEmptyStore = errors.New("vector store is empty")

	// ErrEmbeddingUnavailable indicates the embedding service is
	// unreachable or not configured.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrEmbeddingFailed indicates the embedding service rejected a
	// request (e.g., oversized input).
	ErrEmbeddingFailed = errors.New("embedding failed")

	// ErrLLMUnavailable indicates the generation service is unreachable
	// or not configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrGenerationFailed indicates the generation service rejected a
	// request.
	ErrGenerationFailed = errors.New("generation failed")

	// Scraper errors.

	// ErrNoTarget indicates no matching minutes link was found on the
	// calendar page. Callers treat this as a logged no-op.
	ErrNoTarget = errors.New("no minutes link found")

	// ErrDownloadFailed indicates the HTTP fetch of a minutes PDF
	// returned a non-success status.
	ErrDownloadFailed = errors.New("download failed")
)
