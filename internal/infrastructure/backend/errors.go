package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a failure the server actually responded to: a non-success
// status plus whatever JSON body came with it. Transport failures — no
// response at all — are returned as ordinary wrapped errors and never as
// *APIError, so callers can tell the two apart with errors.As.
type APIError struct {
	Status int
	// Body is the decoded error payload. Empty (never nil) when the
	// response body was empty or not JSON.
	Body map[string]any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message())
}

// Message extracts the server-provided human-readable message, trying the
// envelope keys the backend is known to use before falling back to the
// status text.
func (e *APIError) Message() string {
	for _, k := range []string{"message", "error"} {
		if v, ok := e.Body[k].(string); ok && v != "" {
			return v
		}
	}
	if s := http.StatusText(e.Status); s != "" {
		return s
	}
	return "request failed"
}

// AsAPIError unwraps err into an *APIError when the failure carries a
// server response.
func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
