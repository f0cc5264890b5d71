package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedwatch-labs/fedwatch-cli/internal/core/domain"
)

type stubAnalyst struct {
	analysis *domain.Analysis
	err      error
	asked    []string
}

func (s *stubAnalyst) Retrieve(_ context.Context, _ string, _ int) ([]string, error) {
	return nil, nil
}

func (s *stubAnalyst) Ask(_ context.Context, question string) (*domain.Analysis, error) {
	s.asked = append(s.asked, question)
	if s.err != nil {
		return nil, s.err
	}
	return s.analysis, nil
}

func sized(m Model) Model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func typeQuestion(m Model, question string) (Model, tea.Cmd) {
	m.input.SetValue(question)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

func TestNew_SeedsGreeting(t *testing.T) {
	m := New(&stubAnalyst{})

	msgs := m.session.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, domain.RoleAssistant, msgs[0].Role)
	assert.Equal(t, domain.Greeting, msgs[0].Content)
}

func TestView_ShowsGreetingOnceSized(t *testing.T) {
	m := sized(New(&stubAnalyst{}))

	view := m.View()
	assert.Contains(t, view, "Fedwatch")
	assert.Contains(t, view, "read the Fed minutes")
}

func TestUpdate_EnterSubmitsQuestion(t *testing.T) {
	analyst := &stubAnalyst{analysis: &domain.Analysis{
		Answer:    "The tone is HAWKISH.",
		Sentiment: domain.SentimentHawkish,
	}}
	m := sized(New(analyst))

	m, cmd := typeQuestion(m, "What about rates?")
	require.NotNil(t, cmd)
	assert.True(t, m.waiting)

	// The transcript records the question immediately.
	msgs := m.session.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.RoleUser, msgs[1].Role)
	assert.Equal(t, "What about rates?", msgs[1].Content)

	// Running the command performs the analysis.
	msg := cmd()
	answer, ok := msg.(answerMsg)
	require.True(t, ok)
	require.NoError(t, answer.err)
	assert.Equal(t, []string{"What about rates?"}, analyst.asked)

	updated, _ := m.Update(answer)
	m = updated.(Model)
	assert.False(t, m.waiting)

	msgs = m.session.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, domain.RoleAssistant, msgs[2].Role)
	assert.Contains(t, msgs[2].Content, "The tone is HAWKISH.")
	assert.Contains(t, msgs[2].Content, "Sentiment: HAWKISH")
}

func TestUpdate_BlankInputIgnored(t *testing.T) {
	m := sized(New(&stubAnalyst{}))

	m, cmd := typeQuestion(m, "   ")
	assert.Nil(t, cmd)
	assert.False(t, m.waiting)
	assert.Len(t, m.session.Messages(), 1)
}

func TestUpdate_ErrorShownWithoutTranscriptEntry(t *testing.T) {
	analyst := &stubAnalyst{err: errors.New("llm unreachable")}
	m := sized(New(analyst))

	m, cmd := typeQuestion(m, "question?")
	require.NotNil(t, cmd)

	updated, _ := m.Update(cmd())
	m = updated.(Model)

	assert.False(t, m.waiting)
	assert.Contains(t, m.View(), "llm unreachable")

	// The failed turn leaves only greeting and question in the transcript.
	assert.Len(t, m.session.Messages(), 2)
}

func TestUpdate_EnterWhileWaitingIgnored(t *testing.T) {
	m := sized(New(&stubAnalyst{analysis: &domain.Analysis{Answer: "ok"}}))

	m, cmd := typeQuestion(m, "first?")
	require.NotNil(t, cmd)

	m, cmd2 := typeQuestion(m, "second?")
	assert.Nil(t, cmd2)
	assert.Len(t, m.session.Messages(), 2)
}

func TestUpdate_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc} {
		m := sized(New(&stubAnalyst{}))
		_, cmd := m.Update(tea.KeyMsg{Type: key})
		require.NotNil(t, cmd, "key %v should quit", key)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestRenderTranscript_LabelsRoles(t *testing.T) {
	m := New(&stubAnalyst{})
	m.session.Append(domain.RoleUser, "my question")
	m.session.Append(domain.RoleAssistant, "my answer")

	out := m.renderTranscript()
	assert.True(t, strings.Contains(out, "my question"))
	assert.True(t, strings.Contains(out, "my answer"))
	assert.Contains(t, out, "You:")
	assert.Contains(t, out, "Analyst:")
}
