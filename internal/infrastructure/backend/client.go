// Package backend implements the HTTP client for the remote student
// support API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/student-support/supportctl/internal/core/domain"
	"github.com/student-support/supportctl/internal/core/ports"
	"github.com/student-support/supportctl/internal/metrics"
)

const defaultTimeout = 15 * time.Second

// Config holds client construction parameters.
type Config struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string
	// Tokens supplies the bearer token per request. May be nil, in which
	// case no Authorization header is ever sent.
	Tokens ports.TokenSource
	// Timeout bounds each request end-to-end. Zero means defaultTimeout.
	Timeout time.Duration
	// HTTPClient overrides the underlying client; used by tests.
	HTTPClient *http.Client
}

// Client talks to the student support REST API. It holds no mutable state
// beyond the embedded http.Client and is safe for concurrent use. The
// bearer token is fetched from the TokenSource on every call, never
// cached, so a token refreshed or cleared elsewhere takes effect on the
// next request.
type Client struct {
	baseURL string
	tokens  ports.TokenSource
	http    *http.Client
	log     zerolog.Logger
}

var _ ports.Backend = (*Client)(nil)

// New builds a Client from cfg.
func New(cfg Config, log zerolog.Logger) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		tokens:  cfg.Tokens,
		http:    hc,
		log:     log,
	}
}

func (c *Client) Login(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
	var res ports.AuthResult
	if err := c.do(ctx, "login", http.MethodPost, "/auth/login", in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	var res ports.AuthResult
	if err := c.do(ctx, "register", http.MethodPost, "/auth/register", in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListEvents fetches the events collection. Each record is tagged
// TypeEvent; the wire format carries no discriminator, the collection it
// came from is the discriminator.
func (c *Client) ListEvents(ctx context.Context) ([]domain.Item, error) {
	return c.listItems(ctx, "list_events", "/community/events", domain.TypeEvent)
}

func (c *Client) CreateEvent(ctx context.Context, in ports.EventInput) (*domain.Item, error) {
	return c.writeItem(ctx, "create_event", http.MethodPost, "/community/events", in, domain.TypeEvent)
}

func (c *Client) UpdateEvent(ctx context.Context, id string, in ports.EventInput) (*domain.Item, error) {
	return c.writeItem(ctx, "update_event", http.MethodPut, "/community/events/"+url.PathEscape(id), in, domain.TypeEvent)
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.do(ctx, "delete_event", http.MethodDelete, "/community/events/"+url.PathEscape(id), nil, nil)
}

// ListPosts fetches the posts collection, tagging each record TypePost.
func (c *Client) ListPosts(ctx context.Context) ([]domain.Item, error) {
	return c.listItems(ctx, "list_posts", "/community/posts", domain.TypePost)
}

func (c *Client) CreatePost(ctx context.Context, in ports.PostInput) (*domain.Item, error) {
	return c.writeItem(ctx, "create_post", http.MethodPost, "/community/posts", in, domain.TypePost)
}

func (c *Client) UpdatePost(ctx context.Context, id string, in ports.PostInput) (*domain.Item, error) {
	return c.writeItem(ctx, "update_post", http.MethodPut, "/community/posts/"+url.PathEscape(id), in, domain.TypePost)
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, "delete_post", http.MethodDelete, "/community/posts/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Chat(ctx context.Context, in ports.ChatInput) (*ports.ChatReply, error) {
	var res ports.ChatReply
	if err := c.do(ctx, "chat", http.MethodPost, "/mental-health/chat", in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) listItems(ctx context.Context, op, path string, t domain.ItemType) ([]domain.Item, error) {
	var items []domain.Item
	if err := c.do(ctx, op, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Type = t
	}
	return items, nil
}

func (c *Client) writeItem(ctx context.Context, op, method, path string, body any, t domain.ItemType) (*domain.Item, error) {
	var item domain.Item
	if err := c.do(ctx, op, method, path, body, &item); err != nil {
		return nil, err
	}
	item.Type = t
	return &item, nil
}

// do performs one request/response cycle. The contract:
//
//   - Content-Type is always application/json; Authorization is set only
//     when the TokenSource currently yields a token.
//   - The response body is decoded as JSON regardless of status. An empty
//     or non-JSON body counts as an empty object.
//   - A failure status returns *APIError carrying the decoded body, so the
//     caller sees the server's structured error whenever the server
//     responded at all. Anything that prevented a response is returned as
//     a plain wrapped error.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("%s: read stored token: %w", op, err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.TransportFailuresTotal.WithLabelValues(op).Inc()
		c.log.Warn().Err(err).Str("operation", op).Msg("request failed before a response")
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	metrics.RequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	metrics.RequestsTotal.WithLabelValues(op, statusClass(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.TransportFailuresTotal.WithLabelValues(op).Inc()
		return fmt.Errorf("%s: read response: %w", op, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		payload := map[string]any{}
		_ = json.Unmarshal(raw, &payload)
		c.log.Warn().
			Str("operation", op).
			Int("status", resp.StatusCode).
			Msg("api request rejected")
		return &APIError{Status: resp.StatusCode, Body: payload}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		// The backend occasionally answers success with an empty or
		// non-JSON body; treat the result as an empty record.
		c.log.Debug().Err(err).Str("operation", op).Msg("undecodable success body, treating as empty")
	}
	return nil
}

func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}
