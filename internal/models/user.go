package models

// LocalUser represents a user record in the database
type LocalUser struct {
	ID       int64  `json:"id" db:"id"`             // Primary key
	Username string `json:"username" db:"username"` // Unique username
	Password string `json:"-" db:"password"`        // bcrypt hash, never serialized
	Name     string `json:"name" db:"name"`         // Display name
	Role     string `json:"role" db:"role"`         // Role tag, e.g. "Admin"
}
