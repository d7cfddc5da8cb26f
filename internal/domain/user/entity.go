package user

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleHR       Role = "HR"
	RoleEmployee Role = "EMPLOYEE"
)

// Actor is the authenticated identity performing an operation. It is built by
// the auth middleware from verified token claims; the core trusts it and never
// re-verifies credentials.
type Actor struct {
	ID         string
	EmployeeID string
	Role       Role
}

type User struct {
	ID           string
	EmployeeID   string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
