package cli

import (
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/student-support/supportctl/internal/core/domain"
	"github.com/student-support/supportctl/internal/infrastructure/backend"
)

// renderError turns a failure into the line shown to the user, by error
// kind: validation messages verbatim, the server's own message for HTTP
// errors, and a generic connectivity line when no response arrived.
func renderError(err error) string {
	var ae *backend.APIError
	var ue *url.Error
	switch {
	case errors.As(err, &ae):
		return "the server said: " + ae.Message()
	case errors.Is(err, domain.ErrInvalidInput):
		return err.Error()
	case errors.Is(err, domain.ErrForbidden):
		return "you can only edit or delete your own items"
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "you need to sign in first"
	case errors.Is(err, domain.ErrItemNotFound):
		return err.Error()
	case errors.As(err, &ue):
		return "could not reach the server, please check your connection and try again"
	default:
		return err.Error()
	}
}

func printItems(w io.Writer, items []domain.Item, me *domain.User) {
	if len(items) == 0 {
		fmt.Fprintln(w, "nothing here yet")
		return
	}
	editable := false
	for _, it := range items {
		marker := " "
		if it.EditableBy(me) {
			marker = "*"
			editable = true
		}
		owner := it.UserName
		if owner == "" {
			owner = it.UserID
		}
		switch it.Type {
		case domain.TypeEvent:
			fmt.Fprintf(w, "%s %s  %s\n    %s — %s (by %s)\n", marker, it.ID, it.Title, it.Date, it.Description, owner)
		default:
			fmt.Fprintf(w, "%s %s  %s\n    %s (by %s)\n", marker, it.ID, it.Title, it.Content, owner)
		}
	}
	if editable {
		fmt.Fprintln(w, "* items you can edit or delete")
	}
}
