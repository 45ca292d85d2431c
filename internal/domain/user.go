package domain

import "time"

// RoleAdmin is the only role assigned today. The field exists so a
// lower-privilege role can be added without a schema change.
const RoleAdmin = "admin"

// User represents an account of the operations tool.
type User struct {
	ID           int64
	Username     string
	Email        string
	Role         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
