package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated account. Tasks are owned by email, which
// doubles as the ownerId scoping every task query.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
