package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fedwatch-labs/fedwatch-cli/internal/connectors/datadir"
	"github.com/fedwatch-labs/fedwatch-cli/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch the data directory and index new files automatically",
	Long: `Watches a directory and ingests each new PDF or text file as it
appears. With no argument the configured data directory is used. Runs
until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if services == nil || services.Ingestor == nil {
		return errors.New("ingestion service not configured")
	}

	dir := services.DataDir
	if len(args) == 1 {
		dir = args[0]
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher, err := datadir.NewWatcher(dir)
	if err != nil {
		return err
	}
	defer watcher.Close()

	cmd.Printf("Watching %s for new documents. Press Ctrl+C to stop.\n", dir)

	for {
		ev, err := watcher.WaitForEvent(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				cmd.Println("Stopped.")
				return nil
			}
			return err
		}

		report, err := services.Ingestor.IngestFile(ctx, ev.Path)
		if err != nil {
			logger.Error("Failed to ingest %s: %v", ev.Path, err)
			continue
		}
		cmd.Printf("Ingested %s (%d chunks).\n", ev.Path, report.Chunks)
	}
}
