package domain

// Role values issued by the backend. The enumeration is open: accounts
// created through registration get RoleStudent, and anything that is not
// RoleAdmin is treated as a regular user.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User is the profile record returned by the auth endpoints and persisted
// alongside the session token.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	StudentID string `json:"studentId,omitempty"`
}

// IsAdmin reports whether the user carries the admin role. Safe on nil.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
