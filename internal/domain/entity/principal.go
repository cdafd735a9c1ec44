package entity

// Role is the authorization level of a resolved caller
type Role string

const (
	RoleUser    Role = "user"
	RoleAdmin   Role = "admin"
	RoleService Role = "service"
)

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleService:
		return true
	default:
		return false
	}
}

// Principal is the authenticated identity on whose behalf a request runs
type Principal struct {
	UserID string
	Role   Role
	// Source records whether the identity came from the session cookie or a bearer token
	Source string
}

// HasRole reports whether the principal holds any of roles
func (p Principal) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}
