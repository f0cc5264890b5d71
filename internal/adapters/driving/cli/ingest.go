package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/domain"
	"github.com/fedwatch-labs/fedwatch-cli/internal/core/ports/driving"
)

var ingestFile string

var ingestCmd = &cobra.Command{
	Use:   "ingest [dir]",
	Short: "Index minutes documents into the vector store",
	Long: `Reads PDF and text files, extracts and chunks their text, embeds each
chunk, and writes the records to the local vector store. With no argument
the configured data directory is used. Re-ingesting a file overwrites its
existing records.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestFile, "file", "f", "", "ingest a single file instead of a directory")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if services == nil || services.Ingestor == nil {
		return errors.New("ingestion service not configured")
	}

	ctx := cmd.Context()

	var (
		report *driving.IngestReport
		err    error
	)
	if ingestFile != "" {
		report, err = services.Ingestor.IngestFile(ctx, ingestFile)
	} else {
		dir := services.DataDir
		if len(args) == 1 {
			dir = args[0]
		}
		report, err = services.Ingestor.IngestDir(ctx, dir)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNoDocuments) {
			return fmt.Errorf("nothing to ingest: %w", err)
		}
		return fmt.Errorf("ingestion failed: %w", err)
	}

	cmd.Printf("Ingested %d document(s), %d chunk(s).\n", report.Documents, report.Chunks)
	if len(report.Skipped) > 0 {
		names := make([]string, 0, len(report.Skipped))
		for name := range report.Skipped {
			names = append(names, name)
		}
		sort.Strings(names)

		cmd.Printf("Skipped %d file(s):\n", len(names))
		for _, name := range names {
			cmd.Printf("  %s: %s\n", name, report.Skipped[name])
		}
	}
	return nil
}
