package domain

import "errors"

var (
	// ErrNotAuthenticated is returned when an operation needs a signed-in
	// user and the session is empty.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrForbidden is returned when the current user fails the
	// owner-or-admin check on a community item.
	ErrForbidden = errors.New("not allowed to modify this item")

	// ErrInvalidInput marks local validation failures. Operations that
	// return it have made no network request.
	ErrInvalidInput = errors.New("invalid input")

	// ErrItemNotFound is returned when an id does not appear in a listing.
	ErrItemNotFound = errors.New("item not found")

	// ErrKeyNotFound is returned by key-value stores for absent keys.
	ErrKeyNotFound = errors.New("key not found")
)
