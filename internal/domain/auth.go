package domain

import "strings"

// Role names the access level carried in session tokens.
type Role string

const (
	RoleManager Role = "manager"
	RoleWorker  Role = "worker"
	RoleSDE     Role = "sde"
)

// Roles lists every known role in a stable order.
var Roles = []Role{RoleManager, RoleWorker, RoleSDE}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// JoinRoles renders roles comma separated, in the given order.
func JoinRoles(roles []Role) string {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, string(role))
	}
	return strings.Join(names, ", ")
}
