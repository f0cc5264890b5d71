// Package cli implements the fedwatch command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/ports/driven"
	"github.com/fedwatch-labs/fedwatch-cli/internal/core/ports/driving"
	"github.com/fedwatch-labs/fedwatch-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services holds the wired use-case implementations the commands run
// against. main assembles it once at startup.
type Services struct {
	Ingestor driving.Ingestor
	Analyst  driving.Analyst
	Source   driven.MinutesSource
	Store    driven.VectorStore

	// DataDir is where minutes files are downloaded and read from.
	DataDir string
}

var services *Services

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "fedwatch",
	Short: "Analyze the sentiment of FOMC meeting minutes",
	Long: `Fedwatch downloads Federal Reserve FOMC meeting minutes, indexes them
into a local vector store, and answers questions about their monetary-policy
sentiment using a local or hosted language model.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetServices injects the wired services. Must be called before Execute.
func SetServices(s *Services) {
	services = s
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
