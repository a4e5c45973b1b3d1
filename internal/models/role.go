package models

import "fmt"

// Role is the closed set of staff roles. Role decides which views and
// routes a user can reach, so parsing is strict: anything outside the
// three known values is rejected at the point of entry.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCashier   Role = "cashier"
	RoleInventory Role = "inventory"
)

// ParseRole validates a raw role string (from a JWT claim or an admin
// form) into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleCashier, RoleInventory:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string { return string(r) }
