package models

// Roles recognized by the system.
const (
	RoleAdmin     = "admin"
	RoleReception = "reception"
	RoleDoctor    = "doctor"
)

// Actor identifies the authenticated caller of a service operation.
// It is always passed explicitly; services never read ambient request state.
type Actor struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// HasRole reports whether the actor holds one of the given roles.
func (a Actor) HasRole(roles ...string) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}
