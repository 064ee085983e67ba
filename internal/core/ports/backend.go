package ports

import (
	"context"

	"github.com/student-support/supportctl/internal/core/domain"
)

// LoginInput carries the credentials for POST /auth/login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput carries the fields for POST /auth/register.
type RegisterInput struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	StudentID string `json:"studentId" validate:"required"`
}

// AuthResult is the success shape shared by login and registration.
type AuthResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// EventInput carries the writable fields of a community event.
type EventInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required"`
}

// PostInput carries the writable fields of a community post.
type PostInput struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// ChatInput is one turn sent to the wellness assistant. UserID may be
// empty; the assistant answers anonymous turns too.
type ChatInput struct {
	Message string `json:"message" validate:"required"`
	UserID  string `json:"userId,omitempty"`
}

// ChatReply is the assistant's answer to one turn.
type ChatReply struct {
	Response string `json:"response"`
}

// Backend maps 1:1 onto the remote REST resources. Every call is
// synchronous from the caller's point of view and returns either the
// decoded success body or one of the client error kinds (HTTP error with
// the server's payload, or a transport error).
type Backend interface {
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)

	ListEvents(ctx context.Context) ([]domain.Item, error)
	CreateEvent(ctx context.Context, in EventInput) (*domain.Item, error)
	UpdateEvent(ctx context.Context, id string, in EventInput) (*domain.Item, error)
	DeleteEvent(ctx context.Context, id string) error

	ListPosts(ctx context.Context) ([]domain.Item, error)
	CreatePost(ctx context.Context, in PostInput) (*domain.Item, error)
	UpdatePost(ctx context.Context, id string, in PostInput) (*domain.Item, error)
	DeletePost(ctx context.Context, id string) error

	Chat(ctx context.Context, in ChatInput) (*ChatReply, error)
}
