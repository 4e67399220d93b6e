package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID   `json:"id"`
	Username   string      `json:"username"`
	Email      string      `json:"email"`
	Password   string      `json:"-"` // ciphertext, never serialized
	Followers  []uuid.UUID `json:"followers"`
	Followings []uuid.UUID `json:"followings"`
	About      string      `json:"about,omitempty"`
	City       string      `json:"city,omitempty"`
	From       string      `json:"from,omitempty"`
	Interests  []string    `json:"interests,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// ContainsID reports whether ids contains id.
func ContainsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
