// Package services contains the core use cases, wired together from
// driven ports. Services hold no infrastructure code.
package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/domain"
	"github.com/fedwatch-labs/fedwatch-cli/internal/core/ports/driven"
	"github.com/fedwatch-labs/fedwatch-cli/internal/core/ports/driving"
	"github.com/fedwatch-labs/fedwatch-cli/internal/logger"
)

const defaultEmbedWorkers = 4

// IngestService loads source files, normalises and chunks them, embeds the
// chunks, and writes the records to the vector store. Each document is
// committed all-or-nothing: an embedding failure partway through leaves no
// records for that file behind.
type IngestService struct {
	normaliser driven.Normaliser
	pipeline   driven.PostProcessorPipeline
	embedder   driven.EmbeddingService
	store      driven.VectorStore
	workers    int
}

// NewIngestService creates an ingestion service. workers bounds concurrent
// embedding requests per document; values below 1 use a default.
func NewIngestService(
	normaliser driven.Normaliser,
	pipeline driven.PostProcessorPipeline,
	embedder driven.EmbeddingService,
	store driven.VectorStore,
	workers int,
) *IngestService {
	if workers < 1 {
		workers = defaultEmbedWorkers
	}
	return &IngestService{
		normaliser: normaliser,
		pipeline:   pipeline,
		embedder:   embedder,
		store:      store,
		workers:    workers,
	}
}

// IngestDir ingests every supported file directly under dir. Unsupported
// or unreadable files are skipped and reported; they do not abort the run.
// Fails with domain.ErrNoDocuments when nothing was processed.
func (s *IngestService) IngestDir(ctx context.Context, dir string) (*driving.IngestReport, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading source directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	report := &driving.IngestReport{Skipped: make(map[string]string)}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(dir, name)
		chunks, err := s.ingestOne(ctx, path)
		if err != nil {
			logger.Warn("Skipping %s: %v", name, err)
			report.Skipped[name] = err.Error()
			continue
		}
		report.Documents++
		report.Chunks += chunks
	}

	if report.Documents == 0 {
		return nil, fmt.Errorf("%w in %s", domain.ErrNoDocuments, dir)
	}
	return report, nil
}

// IngestFile ingests a single file.
func (s *IngestService) IngestFile(ctx context.Context, path string) (*driving.IngestReport, error) {
	chunks, err := s.ingestOne(ctx, path)
	if err != nil {
		return nil, err
	}
	return &driving.IngestReport{
		Documents: 1,
		Chunks:    chunks,
		Skipped:   make(map[string]string),
	}, nil
}

// ingestOne runs the full pipeline for one file and returns the number of
// records written.
func (s *IngestService) ingestOne(ctx context.Context, path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading file: %w", err)
	}

	raw := &domain.RawDocument{
		URI:      path,
		Filename: filepath.Base(path),
		Content:  content,
		Metadata: map[string]any{},
	}

	result, err := s.normaliser.Normalise(ctx, raw)
	if err != nil {
		return 0, fmt.Errorf("normalising: %w", err)
	}

	doc := result.Document
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}

	chunks, err := s.pipeline.Process(ctx, &doc)
	if err != nil {
		return 0, fmt.Errorf("chunking: %w", err)
	}
	if len(chunks) == 0 {
		return 0, fmt.Errorf("%w: no text extracted", domain.ErrInvalidInput)
	}

	logger.Debug("Embedding %d chunks from %s", len(chunks), doc.Filename)
	if err := s.embedChunks(ctx, chunks); err != nil {
		return 0, err
	}

	// All embeddings succeeded; commit the document in one transaction.
	if err := s.store.Add(ctx, chunks); err != nil {
		return 0, fmt.Errorf("storing chunks: %w", err)
	}

	logger.Info("Ingested %s (%d chunks)", doc.Filename, len(chunks))
	return len(chunks), nil
}

// embedChunks fills in Embedding for every chunk, fanning out across a
// bounded worker group. Any failure cancels the remaining work.
func (s *IngestService) embedChunks(ctx context.Context, chunks []domain.Chunk) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := range chunks {
		i := i
		g.Go(func() error {
			vec, err := s.embedder.Embed(gctx, chunks[i].Content)
			if err != nil {
				return fmt.Errorf("embedding chunk %d: %w", chunks[i].Position, err)
			}
			chunks[i].Embedding = vec
			return nil
		})
	}
	return g.Wait()
}
