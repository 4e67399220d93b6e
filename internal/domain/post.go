package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxPostDescriptionLen caps post descriptions, mirroring the column width.
const MaxPostDescriptionLen = 500

type Post struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"user_id"`
	Description string      `json:"description"`
	Likes       []uuid.UUID `json:"likes"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
