package services

import (
	"context"
	"sync"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/domain"
	"github.com/fedwatch-labs/fedwatch-cli/internal/core/ports/driven"
)

// fakeEmbedder returns a fixed vector, or fails per-text via failOn.
type fakeEmbedder struct {
	mu     sync.Mutex
	calls  []string
	vector []float32
	failOn map[string]error
	err    error
}

func newFakeEmbedder() *fakeEmbedder {
	return &fakeEmbedder{vector: []float32{1, 0, 0}, failOn: map[string]error{}}
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, text)
	if err, ok := f.failOn[text]; ok {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	out := make([]float32, len(f.vector))
	copy(out, f.vector)
	return out, nil
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		vec, err := f.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

func (f *fakeEmbedder) Dimensions() int            { return len(f.vector) }
func (f *fakeEmbedder) ModelName() string          { return "fake-embed" }
func (f *fakeEmbedder) Ping(context.Context) error { return nil }
func (f *fakeEmbedder) Close() error               { return nil }

func (f *fakeEmbedder) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// fakeStore records Add calls and serves canned query results.
type fakeStore struct {
	mu       sync.Mutex
	added    [][]domain.Chunk
	results  []domain.ScoredChunk
	queryErr error
	addErr   error
	lastK    int
}

func (f *fakeStore) Add(_ context.Context, chunks []domain.Chunk) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	cp := make([]domain.Chunk, len(chunks))
	copy(cp, chunks)
	f.added = append(f.added, cp)
	return nil
}

func (f *fakeStore) Query(_ context.Context, _ []float32, k int) ([]domain.ScoredChunk, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastK = k
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if len(f.results) > k {
		return f.results[:k], nil
	}
	return f.results, nil
}

func (f *fakeStore) Count(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, batch := range f.added {
		n += len(batch)
	}
	return n, nil
}

func (f *fakeStore) Sources(context.Context) (map[string]int, error) { return nil, nil }
func (f *fakeStore) Clear(context.Context) error                     { return nil }
func (f *fakeStore) Close() error                                    { return nil }

// fakeLLM echoes a canned answer and records the messages it was given.
type fakeLLM struct {
	answer   string
	err      error
	messages []domain.ConversationMessage
	called   bool
}

func (f *fakeLLM) Chat(_ context.Context, messages []domain.ConversationMessage, _ driven.ChatOptions) (string, error) {
	f.called = true
	f.messages = messages
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func (f *fakeLLM) ModelName() string          { return "fake-llm" }
func (f *fakeLLM) Ping(context.Context) error { return nil }
func (f *fakeLLM) Close() error               { return nil }

// fakeNormaliser passes raw bytes through as text.
type fakeNormaliser struct {
	err error
}

func (f *fakeNormaliser) SupportedMIMETypes() []string { return []string{"text/plain"} }

func (f *fakeNormaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &driven.NormaliseResult{
		Document: domain.Document{
			ID:       "doc-" + raw.Filename,
			Filename: raw.Filename,
			URI:      raw.URI,
			Content:  string(raw.Content),
			Metadata: map[string]any{},
		},
	}, nil
}
