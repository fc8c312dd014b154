package entities

import "strings"

// Role is the value yielded by the authentication layer for the acting user.
type Role string

const (
	RoleOwner          Role = "owner"
	RoleManager        Role = "manager"
	RoleServiceAdvisor Role = "service_advisor"
	RoleCashier        Role = "cashier"
	RoleMechanic       Role = "mechanic"
)

func ParseRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

// CanReopen reports whether the role is manager-equivalent.
func (r Role) CanReopen() bool {
	switch r {
	case RoleOwner, RoleManager:
		return true
	}
	return false
}
