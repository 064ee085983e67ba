package ports

import "context"

// KeyValueStore is the durable string storage backing the session: the
// local analogue of a mobile platform's key-value storage. Implementations
// must return domain.ErrKeyNotFound from Get for absent keys and treat
// Delete of a missing key as success.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// TokenSource yields the current bearer token, or "" when no session
// exists. The API client consults it on every request instead of caching
// the value, so a token written or cleared elsewhere is honoured on the
// next call.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
