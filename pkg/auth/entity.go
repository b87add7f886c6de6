package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a system user (an HR operator).
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}
