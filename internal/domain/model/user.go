package model

import "time"

// Role restricts what a user may do over the HTTP boundary.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// User represents a registered customer or administrator.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
