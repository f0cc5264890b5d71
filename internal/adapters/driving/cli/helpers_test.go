package cli

import (
	"bytes"
	"context"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/domain"
	"github.com/fedwatch-labs/fedwatch-cli/internal/core/ports/driving"
)

// fakeIngestor returns canned reports.
type fakeIngestor struct {
	report *driving.IngestReport
	err    error
	dirs   []string
	files  []string
}

func (f *fakeIngestor) IngestDir(_ context.Context, dir string) (*driving.IngestReport, error) {
	f.dirs = append(f.dirs, dir)
	return f.report, f.err
}

func (f *fakeIngestor) IngestFile(_ context.Context, path string) (*driving.IngestReport, error) {
	f.files = append(f.files, path)
	return f.report, f.err
}

// fakeAnalyst returns a canned analysis.
type fakeAnalyst struct {
	analysis *domain.Analysis
	err      error
	asked    []string
}

func (f *fakeAnalyst) Retrieve(_ context.Context, _ string, _ int) ([]string, error) {
	return nil, nil
}

func (f *fakeAnalyst) Ask(_ context.Context, question string) (*domain.Analysis, error) {
	f.asked = append(f.asked, question)
	return f.analysis, f.err
}

// fakeSource serves a canned minutes link.
type fakeSource struct {
	url      string
	filename string
	findErr  error
	path     string
	dlErr    error
}

func (f *fakeSource) FindLatest(context.Context) (string, string, error) {
	return f.url, f.filename, f.findErr
}

func (f *fakeSource) Download(_ context.Context, _, _, _ string) (string, error) {
	return f.path, f.dlErr
}

// fakeVectorStore serves canned counts and sources.
type fakeVectorStore struct {
	count   int
	sources map[string]int
	cleared bool
}

func (f *fakeVectorStore) Add(context.Context, []domain.Chunk) error { return nil }

func (f *fakeVectorStore) Query(context.Context, []float32, int) ([]domain.ScoredChunk, error) {
	return nil, nil
}

func (f *fakeVectorStore) Count(context.Context) (int, error) { return f.count, nil }

func (f *fakeVectorStore) Sources(context.Context) (map[string]int, error) {
	return f.sources, nil
}

func (f *fakeVectorStore) Clear(context.Context) error {
	f.cleared = true
	return nil
}

func (f *fakeVectorStore) Close() error { return nil }

// setupTestServices installs fakes and returns a cleanup restoring the
// previous wiring.
func setupTestServices() func() {
	prev := services
	services = &Services{
		Ingestor: &fakeIngestor{report: &driving.IngestReport{
			Documents: 1,
			Chunks:    3,
			Skipped:   map[string]string{},
		}},
		Analyst: &fakeAnalyst{analysis: &domain.Analysis{
			Question:  "q",
			Answer:    "The stance is NEUTRAL.",
			Sentiment: domain.SentimentNeutral,
		}},
		Source: &fakeSource{
			url:      "https://www.federalreserve.gov/files/fomcminutes20250618.pdf",
			filename: "fomcminutes20250618.pdf",
			path:     "/tmp/fomcminutes20250618.pdf",
		},
		Store:   &fakeVectorStore{count: 3, sources: map[string]int{"fomcminutes20250618.pdf": 3}},
		DataDir: "/tmp/minutes",
	}
	return func() { services = prev }
}

// execute runs the root command with args and returns combined output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
