// Package file provides the TOML-backed configuration for fedwatch.
// Configuration lives at ~/.fedwatch/config.toml by default; a missing
// file yields defaults.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Provider names accepted for embedding and LLM backends.
const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

// DataConfig locates the document directory and the vector store.
type DataConfig struct {
	// Dir is where minutes PDFs are downloaded and read from.
	Dir string `toml:"dir"`

	// StoreDir is where the SQLite vector store lives.
	StoreDir string `toml:"store_dir"`
}

// ChunkingConfig configures the fixed-size chunker.
type ChunkingConfig struct {
	Size    int `toml:"size"`
	Overlap int `toml:"overlap"`
}

// EmbeddingConfig selects and configures the embedding backend.
type EmbeddingConfig struct {
	// Provider is "ollama" or "openai".
	Provider string `toml:"provider"`

	// BaseURL overrides the provider's default endpoint.
	BaseURL string `toml:"base_url"`

	// Model is the embedding model name.
	Model string `toml:"model"`

	// APIKeyEnv names the environment variable holding the API key
	// (openai only). The key itself is never stored in the file.
	APIKeyEnv string `toml:"api_key_env"`

	// TimeoutSecs is the per-request timeout.
	TimeoutSecs int `toml:"timeout_secs"`

	// RequestsPerSecond throttles calls to the backend. Zero disables.
	RequestsPerSecond float64 `toml:"requests_per_second"`

	// Workers bounds concurrent chunk embedding during ingestion.
	Workers int `toml:"workers"`
}

// LLMConfig selects and configures the chat-completion backend.
type LLMConfig struct {
	Provider    string `toml:"provider"`
	BaseURL     string `toml:"base_url"`
	Model       string `toml:"model"`
	APIKeyEnv   string `toml:"api_key_env"`
	TimeoutSecs int    `toml:"timeout_secs"`
}

// RetrievalConfig configures context retrieval and prompt assembly.
type RetrievalConfig struct {
	// TopK is the number of chunks retrieved per question.
	TopK int `toml:"top_k"`

	// ContextBudget caps the total characters of context placed in the
	// prompt. Lowest-ranked chunks are dropped first.
	ContextBudget int `toml:"context_budget"`
}

// ScraperConfig configures the FOMC calendar scraper.
type ScraperConfig struct {
	// CalendarURL is the page listing meeting minutes.
	CalendarURL string `toml:"calendar_url"`

	// BaseURL resolves relative links found on the calendar page.
	BaseURL string `toml:"base_url"`

	// Marker is the substring a link's URL must contain to count as
	// minutes.
	Marker string `toml:"marker"`
}

// Config is the root fedwatch configuration.
type Config struct {
	Data      DataConfig      `toml:"data"`
	Chunking  ChunkingConfig  `toml:"chunking"`
	Embedding EmbeddingConfig `toml:"embedding"`
	LLM       LLMConfig       `toml:"llm"`
	Retrieval RetrievalConfig `toml:"retrieval"`
	Scraper   ScraperConfig   `toml:"scraper"`
}

// DefaultConfigPath returns ~/.fedwatch/config.toml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".fedwatch", "config.toml"), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	home, _ := os.UserHomeDir()
	base := filepath.Join(home, ".fedwatch")

	return &Config{
		Data: DataConfig{
			Dir:      filepath.Join(base, "minutes"),
			StoreDir: filepath.Join(base, "data"),
		},
		Chunking: ChunkingConfig{
			Size:    1000,
			Overlap: 100,
		},
		Embedding: EmbeddingConfig{
			Provider:    ProviderOllama,
			Model:       "nomic-embed-text",
			APIKeyEnv:   "OPENAI_API_KEY",
			TimeoutSecs: 30,
			Workers:     4,
		},
		LLM: LLMConfig{
			Provider:    ProviderOllama,
			Model:       "llama3.1",
			APIKeyEnv:   "OPENAI_API_KEY",
			TimeoutSecs: 120,
		},
		Retrieval: RetrievalConfig{
			TopK:          5,
			ContextBudget: 8000,
		},
		Scraper: ScraperConfig{
			CalendarURL: "https://www.federalreserve.gov/monetarypolicy/fomccalendars.htm",
			BaseURL:     "https://www.federalreserve.gov",
			Marker:      "fomcminutes",
		},
	}
}

// Load reads the config at path. A missing file returns defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	applyDefaults(cfg)
	return cfg, nil
}

// Save writes the config to path, creating directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// APIKey resolves the configured API key environment variable.
func (c EmbeddingConfig) APIKey() string {
	return os.Getenv(c.APIKeyEnv)
}

// APIKey resolves the configured API key environment variable.
func (c LLMConfig) APIKey() string {
	return os.Getenv(c.APIKeyEnv)
}

// applyDefaults backfills zero values a hand-edited file may have dropped.
func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.Chunking.Size == 0 {
		cfg.Chunking.Size = def.Chunking.Size
	}
	if cfg.Retrieval.TopK == 0 {
		cfg.Retrieval.TopK = def.Retrieval.TopK
	}
	if cfg.Retrieval.ContextBudget == 0 {
		cfg.Retrieval.ContextBudget = def.Retrieval.ContextBudget
	}
	if cfg.Embedding.Provider == "" {
		cfg.Embedding.Provider = def.Embedding.Provider
	}
	if cfg.Embedding.Workers == 0 {
		cfg.Embedding.Workers = def.Embedding.Workers
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = def.LLM.Provider
	}
	if cfg.Scraper.CalendarURL == "" {
		cfg.Scraper = def.Scraper
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = def.Data.Dir
	}
	if cfg.Data.StoreDir == "" {
		cfg.Data.StoreDir = def.Data.StoreDir
	}
}
