package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Password holds the plaintext on a candidate and the hex SHA-256 digest on a stored record.
// ID, CreatedAt and UpdatedAt are assigned by persistence.
type User struct {
	ID        string
	FirstName string
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
