package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/domain"
)

var (
	askJSON        bool
	askShowContext bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the indexed minutes",
	Long: `Retrieves the stored passages most relevant to the question and asks
the language model for an answer with a HAWKISH, DOVISH, or NEUTRAL
sentiment classification.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the analysis as JSON")
	askCmd.Flags().BoolVar(&askShowContext, "show-context", false, "print the retrieved context passages")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if services == nil || services.Analyst == nil {
		return errors.New("analyst service not configured")
	}

	analysis, err := services.Analyst.Ask(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if askJSON {
		return outputAnalysisJSON(cmd, analysis)
	}
	return outputAnalysisText(cmd, analysis)
}

func outputAnalysisJSON(cmd *cobra.Command, analysis *domain.Analysis) error {
	out := struct {
		Question  string   `json:"question"`
		Answer    string   `json:"answer"`
		Sentiment string   `json:"sentiment"`
		Context   []string `json:"context,omitempty"`
	}{
		Question:  analysis.Question,
		Answer:    analysis.Answer,
		Sentiment: string(analysis.Sentiment),
	}
	if askShowContext {
		out.Context = analysis.ContextChunks
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAnalysisText(cmd *cobra.Command, analysis *domain.Analysis) error {
	cmd.Println(analysis.Answer)
	if analysis.Sentiment != domain.SentimentUnknown {
		cmd.Println()
		cmd.Printf("Sentiment: %s\n", analysis.Sentiment)
	}

	if askShowContext && len(analysis.ContextChunks) > 0 {
		cmd.Println()
		cmd.Printf("Context (%d passages):\n", len(analysis.ContextChunks))
		for i, chunk := range analysis.ContextChunks {
			cmd.Printf("  [%d] %s\n", i+1, chunk)
		}
	}
	return nil
}
