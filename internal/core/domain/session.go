package domain

// Message roles in a conversation transcript.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationMessage is a single entry in a session transcript.
type ConversationMessage struct {
	// Role is one of RoleSystem, RoleUser, RoleAssistant.
	Role string

	// Content is the message text.
	Content string
}

// Greeting is the assistant message every new session starts with.
const Greeting = "Hello. I have read the Fed minutes. Ask me about inflation, " +
	"interest rates, or the general sentiment."

// Session holds the ordered, append-only transcript of one interactive
// session. It is owned by the interactive surface and never shared across
// sessions.
type Session struct {
	messages []ConversationMessage
}

// NewSession creates a session seeded with the assistant greeting.
func NewSession() *Session {
	return &Session{
		messages: []ConversationMessage{
			{Role: RoleAssistant, Content: Greeting},
		},
	}
}

// Append adds a message to the transcript.
func (s *Session) Append(role, content string) {
	s.messages = append(s.messages, ConversationMessage{Role: role, Content: content})
}

// Messages returns a copy of the transcript in order.
func (s *Session) Messages() []ConversationMessage {
	out := make([]ConversationMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages in the transcript.
func (s *Session) Len() int {
	return len(s.messages)
}
