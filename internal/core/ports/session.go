package ports

import "github.com/student-support/supportctl/internal/core/domain"

// Identity is the read side of the session store, consumed by services
// that need to know who is acting.
type Identity interface {
	// Current returns the signed-in user, or nil when unauthenticated.
	Current() *domain.User
	// Authenticated reports whether a session token is present.
	Authenticated() bool
}
