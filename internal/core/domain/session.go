package domain

// Session pairs the backend-issued token with the profile it was issued
// for. The zero value means "not authenticated". Token and User are set
// and cleared together; no consumer may observe one without the other.
type Session struct {
	Token string
	User  *User
}

// Authenticated reports whether a token is present. Per the session store
// contract, a non-empty token implies a non-nil user.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
