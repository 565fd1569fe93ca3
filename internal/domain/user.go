package domain

import "time"

// UserRole separates regular diners from panel administrators.
type UserRole string

const (
	UserRoleStandard UserRole = "user"
	UserRoleAdmin    UserRole = "admin"
)

// User is the domain model for registered accounts.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Phone        *string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user may pass the admin gate.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == UserRoleAdmin
}
