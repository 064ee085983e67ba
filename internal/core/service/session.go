// Package service holds the application core: the session store and the
// use-case services layered on the API client.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/student-support/supportctl/internal/core/domain"
	"github.com/student-support/supportctl/internal/core/ports"
	"github.com/student-support/supportctl/internal/metrics"
)

// Storage keys for the persisted session. Both entries are written and
// removed together; observing one without the other means the stored
// session is damaged and gets discarded.
const (
	keyToken = "token"
	keyUser  = "user"
)

// Session is the single authoritative record of who is signed in. The
// in-memory copy is the source of truth after Load; the key-value store
// holds the durable copy, written synchronously on every change.
//
// Session also implements ports.TokenSource and ports.Identity for the
// API client and the other services.
type Session struct {
	mu     sync.Mutex
	store  ports.KeyValueStore
	log    zerolog.Logger
	loaded bool
	sess   domain.Session
}

var (
	_ ports.TokenSource = (*Session)(nil)
	_ ports.Identity    = (*Session)(nil)
)

// NewSession returns an empty, not-yet-loaded session store.
func NewSession(store ports.KeyValueStore, log zerolog.Logger) *Session {
	return &Session{store: store, log: log}
}

// Load restores the persisted session. It runs at most once per instance;
// later calls return immediately. Load never fails: a missing key, an
// unreadable store, an undecodable user record, or a pair with only one
// half present all resolve to the unauthenticated state, and a damaged
// pair is cleared so the next start finds a clean store.
func (s *Session) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return
	}
	s.loaded = true

	token, tokenErr := s.store.Get(ctx, keyToken)
	rawUser, userErr := s.store.Get(ctx, keyUser)

	hasToken := tokenErr == nil && token != ""
	hasUser := userErr == nil && rawUser != ""

	if !hasToken && !hasUser {
		s.warnIfReadFailed(tokenErr)
		s.warnIfReadFailed(userErr)
		metrics.SessionTransitionsTotal.WithLabelValues("unauthenticated").Inc()
		return
	}
	if hasToken != hasUser {
		s.log.Warn().Msg("stored session is incomplete, discarding it")
		s.clearStored(ctx)
		metrics.SessionTransitionsTotal.WithLabelValues("unauthenticated").Inc()
		return
	}

	var user domain.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.log.Warn().Err(err).Msg("stored user record is corrupt, discarding session")
		s.clearStored(ctx)
		metrics.SessionTransitionsTotal.WithLabelValues("unauthenticated").Inc()
		return
	}

	s.sess = domain.Session{Token: token, User: &user}
	metrics.SessionTransitionsTotal.WithLabelValues("authenticated").Inc()
}

// Login installs a fresh session. The in-memory state changes first and
// both keys are persisted before returning, so a load on the next start
// sees the same pair. A storage failure is logged and does not roll back
// the in-memory session.
func (s *Session) Login(ctx context.Context, token string, user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sess = domain.Session{Token: token, User: user}
	metrics.SessionTransitionsTotal.WithLabelValues("authenticated").Inc()

	if err := s.store.Set(ctx, keyToken, token); err != nil {
		s.log.Error().Err(err).Msg("persisting session token failed")
	}
	raw, err := json.Marshal(user)
	if err != nil {
		s.log.Error().Err(err).Msg("encoding session user failed")
		return
	}
	if err := s.store.Set(ctx, keyUser, string(raw)); err != nil {
		s.log.Error().Err(err).Msg("persisting session user failed")
	}
}

// Logout clears the session and removes both persisted keys. Calling it
// while unauthenticated is a no-op.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.sess.Authenticated() {
		return
	}
	s.sess = domain.Session{}
	s.clearStored(ctx)
	metrics.SessionTransitionsTotal.WithLabelValues("unauthenticated").Inc()
}

// Loading reports whether the initial restore has not resolved yet. It is
// true exactly until the first Load call returns and never again.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.loaded
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess.Authenticated()
}

// Current returns the signed-in user, or nil.
func (s *Session) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess.User
}

// Token satisfies ports.TokenSource. It reads the durable copy rather
// than the in-memory one, so a token written or removed by another
// process is honoured on the very next request.
func (s *Session) Token(ctx context.Context) (string, error) {
	v, err := s.store.Get(ctx, keyToken)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s *Session) clearStored(ctx context.Context) {
	if err := s.store.Delete(ctx, keyToken); err != nil {
		s.log.Error().Err(err).Msg("removing stored token failed")
	}
	if err := s.store.Delete(ctx, keyUser); err != nil {
		s.log.Error().Err(err).Msg("removing stored user failed")
	}
}

func (s *Session) warnIfReadFailed(err error) {
	if err != nil && !errors.Is(err, domain.ErrKeyNotFound) {
		s.log.Warn().Err(err).Msg("session store unreadable, starting unauthenticated")
	}
}
