package genai

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Message is one chat transcript line.
type Message struct {
	ID   string
	Role string // "user" or "assistant"
	Text string
	At   time.Time
}

// ChatSession keeps the in-memory transcript for the chat panel. The
// transcript is session-local and never persisted.
type ChatSession struct {
	g        Generator
	messages []Message
}

// NewChatSession creates a session over g. g may be nil when no credential
// is available; Reply then returns ErrNoCredential without attempting a
// request.
func NewChatSession(g Generator) *ChatSession {
	return &ChatSession{g: g}
}

// Messages returns the transcript oldest-first.
func (s *ChatSession) Messages() []Message {
	return s.messages
}

// Reply records the user's text, relays the conversation, and records the
// assistant's reply. On failure the user message stays in the transcript and
// the error is returned for inline display — chat is the one surface that
// shows errors instead of falling back.
func (s *ChatSession) Reply(ctx context.Context, text string) (Message, error) {
	s.messages = append(s.messages, Message{
		ID:   uuid.New().String(),
		Role: "user",
		Text: text,
		At:   time.Now(),
	})

	if s.g == nil {
		return Message{}, ErrNoCredential
	}

	history := make([]Turn, 0, len(s.messages)-1)
	for _, m := range s.messages[:len(s.messages)-1] {
		history = append(history, Turn{Role: m.Role, Text: m.Text})
	}

	reply, err := s.g.Generate(ctx, text, history)
	if err != nil {
		return Message{}, err
	}

	msg := Message{
		ID:   uuid.New().String(),
		Role: "assistant",
		Text: reply,
		At:   time.Now(),
	}
	s.messages = append(s.messages, msg)
	return msg, nil
}
