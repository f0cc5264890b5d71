package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/domain"
)

var fetchAndIngest bool

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the latest FOMC minutes PDF",
	Long: `Scrapes the Federal Reserve's meeting calendar for the most recent
minutes PDF and downloads it into the data directory.`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchAndIngest, "ingest", false, "index the downloaded file immediately")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	if services == nil || services.Source == nil {
		return errors.New("minutes source not configured")
	}

	ctx := cmd.Context()

	url, filename, err := services.Source.FindLatest(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoTarget) {
			cmd.Println("No minutes PDF is currently linked from the calendar page.")
			return nil
		}
		return fmt.Errorf("locating minutes: %w", err)
	}

	cmd.Printf("Found %s\n", filename)

	path, err := services.Source.Download(ctx, url, filename, services.DataDir)
	if err != nil {
		return fmt.Errorf("downloading minutes: %w", err)
	}
	cmd.Printf("Saved to %s\n", path)

	if !fetchAndIngest {
		return nil
	}
	if services.Ingestor == nil {
		return errors.New("ingestion service not configured")
	}

	report, err := services.Ingestor.IngestFile(ctx, path)
	if err != nil {
		return fmt.Errorf("ingesting download: %w", err)
	}
	cmd.Printf("Ingested %d chunk(s).\n", report.Chunks)
	return nil
}
