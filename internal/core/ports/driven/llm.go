package driven

import (
	"context"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/domain"
)

// LLMService provides chat-completion operations for answering questions.
//
// Implementations may include:
//   - Ollama (local models such as llama3.1)
//   - OpenAI (GPT-4 family)
type LLMService interface {
	// Chat conducts a multi-turn exchange and returns the generated text
	// verbatim.
	Chat(ctx context.Context, messages []domain.ConversationMessage, opts ChatOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// ChatOptions configures chat behaviour.
type ChatOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}
