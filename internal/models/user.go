package models

// RoleModerator marks an identity allowed to redact comments
const RoleModerator = "moderator"

// User is a verified identity produced by the OIDC exchange.
// It lives only in the session; there is no local user table.
type User struct {
	Email string   `json:"email"`
	Name  string   `json:"name,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// HasRole reports whether the identity carries the given role claim
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
