package auth

import "time"

// RoleUser is the only role the platform currently assigns.
const RoleUser = "USER"

// User is a registered account. PasswordHash never leaves this package.
type User struct {
	ID           int64
	Email        string
	Nickname     string
	PasswordHash string
	BirthDate    *time.Time
	RegisteredAt time.Time
}
