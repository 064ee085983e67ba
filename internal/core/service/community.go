package service

import (
	"context"
	"fmt"

	"github.com/student-support/supportctl/internal/core/domain"
	"github.com/student-support/supportctl/internal/core/ports"
)

// Community wraps the two community collections. Mutations are checked
// against the owner-or-admin rule before any request goes out: the server
// enforces the same rule, but failing locally keeps a doomed request off
// the wire and gives the caller a deterministic error.
type Community struct {
	api ports.Backend
	id  ports.Identity
}

func NewCommunity(api ports.Backend, id ports.Identity) *Community {
	return &Community{api: api, id: id}
}

func (c *Community) ListEvents(ctx context.Context) ([]domain.Item, error) {
	return c.api.ListEvents(ctx)
}

func (c *Community) ListPosts(ctx context.Context) ([]domain.Item, error) {
	return c.api.ListPosts(ctx)
}

// GetEvent returns the listed event with the given id. The backend has no
// single-item endpoint, so this filters the listing.
func (c *Community) GetEvent(ctx context.Context, id string) (*domain.Item, error) {
	items, err := c.api.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	return findItem(items, id)
}

// GetPost returns the listed post with the given id.
func (c *Community) GetPost(ctx context.Context, id string) (*domain.Item, error) {
	items, err := c.api.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	return findItem(items, id)
}

func (c *Community) CreateEvent(ctx context.Context, in ports.EventInput) (*domain.Item, error) {
	if err := c.requireUser(); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return c.api.CreateEvent(ctx, in)
}

func (c *Community) UpdateEvent(ctx context.Context, item domain.Item, in ports.EventInput) (*domain.Item, error) {
	if err := c.requireEditable(item); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return c.api.UpdateEvent(ctx, item.ID, in)
}

func (c *Community) DeleteEvent(ctx context.Context, item domain.Item) error {
	if err := c.requireEditable(item); err != nil {
		return err
	}
	return c.api.DeleteEvent(ctx, item.ID)
}

func (c *Community) CreatePost(ctx context.Context, in ports.PostInput) (*domain.Item, error) {
	if err := c.requireUser(); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return c.api.CreatePost(ctx, in)
}

func (c *Community) UpdatePost(ctx context.Context, item domain.Item, in ports.PostInput) (*domain.Item, error) {
	if err := c.requireEditable(item); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return c.api.UpdatePost(ctx, item.ID, in)
}

func (c *Community) DeletePost(ctx context.Context, item domain.Item) error {
	if err := c.requireEditable(item); err != nil {
		return err
	}
	return c.api.DeletePost(ctx, item.ID)
}

func (c *Community) requireUser() error {
	if c.id.Current() == nil {
		return domain.ErrNotAuthenticated
	}
	return nil
}

func (c *Community) requireEditable(item domain.Item) error {
	user := c.id.Current()
	if user == nil {
		return domain.ErrNotAuthenticated
	}
	if !item.EditableBy(user) {
		return domain.ErrForbidden
	}
	return nil
}

func findItem(items []domain.Item, id string) (*domain.Item, error) {
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("%s: %w", id, domain.ErrItemNotFound)
}
