package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what is indexed in the vector store",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all indexed records from the vector store",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(clearCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if services == nil || services.Store == nil {
		return errors.New("vector store not configured")
	}

	ctx := cmd.Context()

	total, err := services.Store.Count(ctx)
	if err != nil {
		return fmt.Errorf("reading store: %w", err)
	}
	if total == 0 {
		cmd.Println("The vector store is empty. Run 'fedwatch fetch --ingest' to get started.")
		return nil
	}

	sources, err := services.Store.Sources(ctx)
	if err != nil {
		return fmt.Errorf("reading sources: %w", err)
	}

	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)

	cmd.Printf("%d chunk(s) from %d source(s):\n", total, len(names))
	for _, name := range names {
		cmd.Printf("  %s (%d chunks)\n", name, sources[name])
	}
	return nil
}

func runClear(cmd *cobra.Command, _ []string) error {
	if services == nil || services.Store == nil {
		return errors.New("vector store not configured")
	}

	if !clearYes {
		cmd.Print("This removes every indexed record. Continue? [y/N] ")
		var answer string
		fmt.Fscanln(cmd.InOrStdin(), &answer)
		if answer != "y" && answer != "Y" {
			cmd.Println("Aborted.")
			return nil
		}
	}

	if err := services.Store.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clearing store: %w", err)
	}
	cmd.Println("Vector store cleared.")
	return nil
}
