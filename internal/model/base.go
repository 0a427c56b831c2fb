package model

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the fields the record store assigns on create. Records are
// never updated in place after creation except User profile edits, so there
// is no UpdatedAt.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

func GenerateUUID() string {
	return uuid.New().String()
}
