// Package ai builds embedding and LLM adapters from configuration.
package ai

import (
	"fmt"
	"time"

	"github.com/fedwatch-labs/fedwatch-cli/internal/adapters/driven/config/file"
	ollamaembed "github.com/fedwatch-labs/fedwatch-cli/internal/adapters/driven/embedding/ollama"
	openaiembed "github.com/fedwatch-labs/fedwatch-cli/internal/adapters/driven/embedding/openai"
	ollamallm "github.com/fedwatch-labs/fedwatch-cli/internal/adapters/driven/llm/ollama"
	openaillm "github.com/fedwatch-labs/fedwatch-cli/internal/adapters/driven/llm/openai"
	"github.com/fedwatch-labs/fedwatch-cli/internal/core/ports/driven"
)

// NewEmbeddingService builds the configured embedding backend.
func NewEmbeddingService(cfg file.EmbeddingConfig) (driven.EmbeddingService, error) {
	switch cfg.Provider {
	case file.ProviderOllama:
		return ollamaembed.NewEmbeddingService(ollamaembed.Config{
			BaseURL:           cfg.BaseURL,
			Model:             cfg.Model,
			Timeout:           time.Duration(cfg.TimeoutSecs) * time.Second,
			RequestsPerSecond: cfg.RequestsPerSecond,
		}), nil
	case file.ProviderOpenAI:
		return openaiembed.NewEmbeddingService(openaiembed.Config{
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			APIKey:  cfg.APIKey(),
			Timeout: time.Duration(cfg.TimeoutSecs) * time.Second,
		})
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Provider)
	}
}

// NewLLMService builds the configured chat-completion backend.
func NewLLMService(cfg file.LLMConfig) (driven.LLMService, error) {
	switch cfg.Provider {
	case file.ProviderOllama:
		return ollamallm.NewLLMService(ollamallm.Config{
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: time.Duration(cfg.TimeoutSecs) * time.Second,
		}), nil
	case file.ProviderOpenAI:
		return openaillm.NewLLMService(openaillm.Config{
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			APIKey:  cfg.APIKey(),
			Timeout: time.Duration(cfg.TimeoutSecs) * time.Second,
		})
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
