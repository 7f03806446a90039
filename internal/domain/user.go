package domain

import "fmt"

// Role tags what a user may do on the platform.
type Role string

const (
	RoleStudent Role = "student"
	RoleCompany Role = "company"
	RoleAdmin   Role = "admin"
)

// ParseRole validates a role name. Only the exact lowercase names are accepted.
func ParseRole(raw string) (Role, error) {
	role := Role(raw)
	switch role {
	case RoleStudent, RoleCompany, RoleAdmin:
		return role, nil
	}
	return "", fmt.Errorf("unknown role %q", raw)
}

// User is a registered account. PasswordHash is a bcrypt digest.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
}
