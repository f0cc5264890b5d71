// Package tui implements the interactive chat session over the analyst.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/domain"
	"github.com/fedwatch-labs/fedwatch-cli/internal/core/ports/driving"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	subtitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	sentimentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	inputBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// answerMsg carries one completed analysis back into the update loop.
type answerMsg struct {
	analysis *domain.Analysis
	err      error
}

// Model is the Bubble Tea model for the chat session. The transcript is
// held in a domain.Session seeded with the assistant greeting.
type Model struct {
	analyst  driving.Analyst
	session  *domain.Session
	input    textinput.Model
	viewport viewport.Model

	status  string
	waiting bool
	ready   bool
	lastErr string
}

// New creates a chat model.
func New(analyst driving.Analyst) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about the Fed minutes and press Enter"
	ti.Focus()
	ti.CharLimit = 0

	return Model{
		analyst:  analyst,
		session:  domain.NewSession(),
		input:    ti,
		viewport: viewport.New(0, 0),
		status:   "Ready.",
	}
}

// Init starts the input cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, window, and answer events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, ih := inputBoxStyle.GetFrameSize()
		reserved := 2 + 1 + ih + 1 // header, subtitle, input frame, status
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = maxInt(20, msg.Width)
		m.viewport.Height = vh
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter && !m.waiting {
			question := strings.TrimSpace(m.input.Value())
			if question == "" {
				return m, nil
			}
			m.session.Append(domain.RoleUser, question)
			m.input.Reset()
			m.waiting = true
			m.lastErr = ""
			m.status = "Thinking..."
			m.viewport.SetContent(m.renderTranscript())
			m.viewport.GotoBottom()
			return m, askCmd(m.analyst, question)
		}

	case answerMsg:
		m.waiting = false
		if msg.err != nil {
			m.lastErr = msg.err.Error()
			m.status = "Ask again or press Esc to quit."
		} else {
			answer := msg.analysis.Answer
			if msg.analysis.Sentiment != domain.SentimentUnknown {
				answer += "\n" + sentimentStyle.Render("Sentiment: "+string(msg.analysis.Sentiment))
			}
			m.session.Append(domain.RoleAssistant, answer)
			m.status = "Ready."
		}
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View renders the chat layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := titleStyle.Render("Fedwatch")
	subtitle := subtitleStyle.Render("FOMC minutes sentiment analysis. Esc to quit.")
	input := inputBoxStyle.Render(m.input.View())

	status := m.status
	if m.lastErr != "" {
		status = errorStyle.Render("Error: " + m.lastErr)
	}

	return header + "\n" + subtitle + "\n" + m.viewport.View() + "\n" + input + "\n" + status
}

// renderTranscript formats the session history for the viewport.
func (m Model) renderTranscript() string {
	var b strings.Builder
	for i, msg := range m.session.Messages() {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch msg.Role {
		case domain.RoleUser:
			b.WriteString(userStyle.Render("You: "))
		case domain.RoleAssistant:
			b.WriteString(assistantStyle.Render("Analyst: "))
		}
		b.WriteString(msg.Content)
	}
	if m.waiting {
		b.WriteString("\n\n")
		b.WriteString(assistantStyle.Render("Analyst: "))
		b.WriteString("...")
	}
	return b.String()
}

// askCmd runs one analysis off the update loop.
func askCmd(analyst driving.Analyst, question string) tea.Cmd {
	return func() tea.Msg {
		analysis, err := analyst.Ask(context.Background(), question)
		if err != nil {
			return answerMsg{err: fmt.Errorf("analysis failed: %w", err)}
		}
		return answerMsg{analysis: analysis}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
