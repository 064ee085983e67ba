package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/student-support/supportctl/internal/core/domain"
	"github.com/student-support/supportctl/internal/core/ports"
)

// Message senders in an assistant transcript.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// Message is one line of an assistant conversation.
type Message struct {
	Sender string
	Text   string
}

// Assistant is the chat-style wellness helper. It keeps the running
// transcript so an interactive session can re-render the conversation
// after each turn. The transcript lives in memory only and is gone when
// the process exits.
type Assistant struct {
	api        ports.Backend
	id         ports.Identity
	transcript []Message
}

func NewAssistant(api ports.Backend, id ports.Identity) *Assistant {
	return &Assistant{api: api, id: id}
}

// Send posts one turn and returns the assistant's reply. The signed-in
// user's id rides along when a session exists; anonymous turns are
// allowed.
func (a *Assistant) Send(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}

	var userID string
	if u := a.id.Current(); u != nil {
		userID = u.ID
	}

	reply, err := a.api.Chat(ctx, ports.ChatInput{Message: text, UserID: userID})
	if err != nil {
		return "", err
	}

	a.transcript = append(a.transcript,
		Message{Sender: SenderUser, Text: text},
		Message{Sender: SenderAssistant, Text: reply.Response},
	)
	return reply.Response, nil
}

// Transcript returns a copy of the conversation so far.
func (a *Assistant) Transcript() []Message {
	out := make([]Message, len(a.transcript))
	copy(out, a.transcript)
	return out
}
