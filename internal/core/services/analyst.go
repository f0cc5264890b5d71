package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/domain"
	"github.com/fedwatch-labs/fedwatch-cli/internal/core/ports/driven"
	"github.com/fedwatch-labs/fedwatch-cli/internal/logger"
)

const (
	defaultTopK          = 5
	defaultContextBudget = 8000

	// contextSeparator joins retrieved chunks inside the prompt.
	contextSeparator = "\n\n"
)

// AnalystService answers questions about the indexed minutes. Each answer
// is conditioned on the top-k most similar stored chunks and carries a
// parsed sentiment label.
type AnalystService struct {
	embedder driven.EmbeddingService
	store    driven.VectorStore
	llm      driven.LLMService

	topK          int
	contextBudget int
}

// NewAnalystService creates an analyst. topK and contextBudget fall back
// to defaults when non-positive.
func NewAnalystService(
	embedder driven.EmbeddingService,
	store driven.VectorStore,
	llm driven.LLMService,
	topK int,
	contextBudget int,
) *AnalystService {
	if topK < 1 {
		topK = defaultTopK
	}
	if contextBudget < 1 {
		contextBudget = defaultContextBudget
	}
	return &AnalystService{
		embedder:      embedder,
		store:         store,
		llm:           llm,
		topK:          topK,
		contextBudget: contextBudget,
	}
}

// Retrieve returns the top-k stored chunk texts most similar to the
// question, in rank order. An empty store yields an empty slice.
func (s *AnalystService) Retrieve(ctx context.Context, question string, k int) ([]string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: empty question", domain.ErrInvalidInput)
	}
	if k < 1 {
		k = s.topK
	}

	vec, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embedding question: %w", err)
	}

	scored, err := s.store.Query(ctx, vec, k)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyStore) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("querying store: %w", err)
	}

	texts := make([]string, len(scored))
	for i, sc := range scored {
		texts[i] = sc.Content
	}
	return texts, nil
}

// Ask retrieves context for the question and generates an answer with a
// sentiment classification. With nothing indexed the answer states that
// information is missing without calling the model.
func (s *AnalystService) Ask(ctx context.Context, question string) (*domain.Analysis, error) {
	chunks, err := s.Retrieve(ctx, question, s.topK)
	if err != nil {
		return nil, err
	}

	if len(chunks) == 0 {
		return &domain.Analysis{
			Question:      question,
			Answer:        noContextAnswer,
			Sentiment:     domain.SentimentUnknown,
			ContextChunks: []string{},
		}, nil
	}

	contextText := s.assembleContext(chunks)
	prompt := fmt.Sprintf(answerPromptTemplate, contextText, question)

	messages := []domain.ConversationMessage{
		{Role: domain.RoleSystem, Content: systemPrompt},
		{Role: domain.RoleUser, Content: prompt},
	}

	answer, err := s.llm.Chat(ctx, messages, driven.ChatOptions{})
	if err != nil {
		return nil, fmt.Errorf("generating answer: %w", err)
	}

	return &domain.Analysis{
		Question:      question,
		Answer:        answer,
		Sentiment:     domain.DetectSentiment(answer),
		ContextChunks: chunks,
	}, nil
}

// assembleContext joins chunks in rank order, dropping lowest-ranked
// chunks that would push the total past the character budget. At least
// the top chunk is always kept, truncated if it alone exceeds the budget.
func (s *AnalystService) assembleContext(chunks []string) string {
	var b strings.Builder
	kept := 0
	for _, chunk := range chunks {
		add := len(chunk)
		if kept > 0 {
			add += len(contextSeparator)
		}
		if kept > 0 && b.Len()+add > s.contextBudget {
			break
		}
		if kept > 0 {
			b.WriteString(contextSeparator)
		}
		b.WriteString(chunk)
		kept++
	}
	if kept < len(chunks) {
		logger.Debug("Context budget kept %d of %d chunks", kept, len(chunks))
	}

	out := b.String()
	if len(out) > s.contextBudget {
		cut := s.contextBudget
		for cut > 0 && !utf8.RuneStart(out[cut]) {
			cut--
		}
		out = out[:cut]
	}
	return out
}
