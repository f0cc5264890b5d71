package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fedwatch-labs/fedwatch-cli/internal/adapters/driving/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session about the minutes",
	Long: `Launches an interactive terminal session. Each question is answered
against the indexed minutes with a sentiment classification.

Controls:
  Enter - Submit question
  Esc   - Quit`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	if services == nil || services.Analyst == nil {
		return errors.New("analyst service not configured")
	}

	p := tea.NewProgram(tui.New(services.Analyst), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat session failed: %w", err)
	}
	return nil
}
