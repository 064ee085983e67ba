package service

import (
	"context"
	"fmt"

	"github.com/student-support/supportctl/internal/core/domain"
	"github.com/student-support/supportctl/internal/core/ports"
)

// memStore is an in-memory ports.KeyValueStore with injectable failures.
type memStore struct {
	data   map[string]string
	getErr error
	setErr error
	delErr error
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}}
}

func (m *memStore) Get(_ context.Context, key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return "", fmt.Errorf("%s: %w", key, domain.ErrKeyNotFound)
	}
	return v, nil
}

func (m *memStore) Set(_ context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.data, key)
	return nil
}

// stubBackend implements ports.Backend through optional function fields.
// A call whose field is nil fails the invariant that the operation should
// not have been reached, so it panics.
type stubBackend struct {
	loginFn    func(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error)
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error)

	listEventsFn  func(ctx context.Context) ([]domain.Item, error)
	createEventFn func(ctx context.Context, in ports.EventInput) (*domain.Item, error)
	updateEventFn func(ctx context.Context, id string, in ports.EventInput) (*domain.Item, error)
	deleteEventFn func(ctx context.Context, id string) error

	listPostsFn  func(ctx context.Context) ([]domain.Item, error)
	createPostFn func(ctx context.Context, in ports.PostInput) (*domain.Item, error)
	updatePostFn func(ctx context.Context, id string, in ports.PostInput) (*domain.Item, error)
	deletePostFn func(ctx context.Context, id string) error

	chatFn func(ctx context.Context, in ports.ChatInput) (*ports.ChatReply, error)
}

func (s *stubBackend) Login(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
	if s.loginFn == nil {
		panic("unexpected Login call")
	}
	return s.loginFn(ctx, in)
}

func (s *stubBackend) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	if s.registerFn == nil {
		panic("unexpected Register call")
	}
	return s.registerFn(ctx, in)
}

func (s *stubBackend) ListEvents(ctx context.Context) ([]domain.Item, error) {
	if s.listEventsFn == nil {
		panic("unexpected ListEvents call")
	}
	return s.listEventsFn(ctx)
}

func (s *stubBackend) CreateEvent(ctx context.Context, in ports.EventInput) (*domain.Item, error) {
	if s.createEventFn == nil {
		panic("unexpected CreateEvent call")
	}
	return s.createEventFn(ctx, in)
}

func (s *stubBackend) UpdateEvent(ctx context.Context, id string, in ports.EventInput) (*domain.Item, error) {
	if s.updateEventFn == nil {
		panic("unexpected UpdateEvent call")
	}
	return s.updateEventFn(ctx, id, in)
}

func (s *stubBackend) DeleteEvent(ctx context.Context, id string) error {
	if s.deleteEventFn == nil {
		panic("unexpected DeleteEvent call")
	}
	return s.deleteEventFn(ctx, id)
}

func (s *stubBackend) ListPosts(ctx context.Context) ([]domain.Item, error) {
	if s.listPostsFn == nil {
		panic("unexpected ListPosts call")
	}
	return s.listPostsFn(ctx)
}

func (s *stubBackend) CreatePost(ctx context.Context, in ports.PostInput) (*domain.Item, error) {
	if s.createPostFn == nil {
		panic("unexpected CreatePost call")
	}
	return s.createPostFn(ctx, in)
}

func (s *stubBackend) UpdatePost(ctx context.Context, id string, in ports.PostInput) (*domain.Item, error) {
	if s.updatePostFn == nil {
		panic("unexpected UpdatePost call")
	}
	return s.updatePostFn(ctx, id, in)
}

func (s *stubBackend) DeletePost(ctx context.Context, id string) error {
	if s.deletePostFn == nil {
		panic("unexpected DeletePost call")
	}
	return s.deletePostFn(ctx, id)
}

func (s *stubBackend) Chat(ctx context.Context, in ports.ChatInput) (*ports.ChatReply, error) {
	if s.chatFn == nil {
		panic("unexpected Chat call")
	}
	return s.chatFn(ctx, in)
}

// stubIdentity satisfies ports.Identity with a fixed user.
type stubIdentity struct {
	user *domain.User
}

func (s stubIdentity) Current() *domain.User { return s.user }
func (s stubIdentity) Authenticated() bool   { return s.user != nil }
