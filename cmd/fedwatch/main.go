// Command fedwatch downloads FOMC meeting minutes, indexes them into a
// local vector store, and answers questions about their sentiment.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/fedwatch-labs/fedwatch-cli/internal/adapters/driven/ai"
	"github.com/fedwatch-labs/fedwatch-cli/internal/adapters/driven/config/file"
	"github.com/fedwatch-labs/fedwatch-cli/internal/adapters/driven/storage/sqlite"
	"github.com/fedwatch-labs/fedwatch-cli/internal/adapters/driving/cli"
	"github.com/fedwatch-labs/fedwatch-cli/internal/connectors/fomcweb"
	"github.com/fedwatch-labs/fedwatch-cli/internal/core/services"
	"github.com/fedwatch-labs/fedwatch-cli/internal/logger"
	"github.com/fedwatch-labs/fedwatch-cli/internal/normalisers"
	"github.com/fedwatch-labs/fedwatch-cli/internal/normalisers/pdf"
	"github.com/fedwatch-labs/fedwatch-cli/internal/normalisers/plaintext"
	"github.com/fedwatch-labs/fedwatch-cli/internal/postprocessors"
	"github.com/fedwatch-labs/fedwatch-cli/internal/postprocessors/chunker"
)

const pingTimeout = 3 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; API keys may come from the environment directly.
	_ = godotenv.Load()

	configPath := os.Getenv("FEDWATCH_CONFIG")
	if configPath == "" {
		var err error
		configPath, err = file.DefaultConfigPath()
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}
	}
	cfg, err := file.Load(configPath)
	if err != nil {
		return err
	}

	embedder, err := ai.NewEmbeddingService(cfg.Embedding)
	if err != nil {
		return fmt.Errorf("configuring embedding service: %w", err)
	}
	defer embedder.Close()

	llm, err := ai.NewLLMService(cfg.LLM)
	if err != nil {
		return fmt.Errorf("configuring LLM service: %w", err)
	}
	defer llm.Close()

	pingBackends(embedder.Ping, llm.Ping)

	store, err := sqlite.NewStore(cfg.Data.StoreDir)
	if err != nil {
		return fmt.Errorf("opening vector store: %w", err)
	}
	defer store.Close()

	registry := normalisers.NewRegistry(
		pdf.New(),
		plaintext.New(),
	)

	chunkProc, err := chunker.New(cfg.Chunking.Size, cfg.Chunking.Overlap)
	if err != nil {
		return fmt.Errorf("configuring chunker: %w", err)
	}
	pipeline := postprocessors.NewPipeline(chunkProc)

	scraper, err := fomcweb.New(fomcweb.Config{
		CalendarURL: cfg.Scraper.CalendarURL,
		BaseURL:     cfg.Scraper.BaseURL,
		Marker:      cfg.Scraper.Marker,
	})
	if err != nil {
		return fmt.Errorf("configuring scraper: %w", err)
	}

	cli.SetServices(&cli.Services{
		Ingestor: services.NewIngestService(registry, pipeline, embedder, store, cfg.Embedding.Workers),
		Analyst:  services.NewAnalystService(embedder, store, llm, cfg.Retrieval.TopK, cfg.Retrieval.ContextBudget),
		Source:   scraper,
		Store:    store,
		DataDir:  cfg.Data.Dir,
	})

	return cli.Execute()
}

// pingBackends checks the AI backends without blocking startup on them.
// Commands that never touch a backend still work when one is down.
func pingBackends(pings ...func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	for _, ping := range pings {
		if err := ping(ctx); err != nil {
			logger.Warn("AI backend unreachable: %v", err)
		}
	}
}
