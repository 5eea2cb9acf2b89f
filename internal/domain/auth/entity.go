// internal/domain/auth/entity.go
package auth

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleAgent      Role = "agent"
	RoleAccountant Role = "accountant"
	RoleMechanic   Role = "mechanic"
)

// User is one entry of the fixed identity table.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Status    string    `json:"status"`
	LastLogin time.Time `json:"lastLogin"`
}

// HasRole reports whether the user is admitted for any of the given roles.
// Admin bypasses every role check.
func (u User) HasRole(roles ...Role) bool {
	if u.Role == RoleAdmin {
		return true
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
