package identity

import "github.com/shelfstack/bookstore-api/internal/httperr"

// ===============================
// Account Role
// ===============================

type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// ===============================
// Checks
// ===============================

// RequireRole is the single role gate; every role comparison in the API
// goes through here.
func RequireRole(have, want Role) error {
	if have != want {
		return httperr.ErrBusiness("forbidden")
	}
	return nil
}
