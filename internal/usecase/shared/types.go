package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads. Queries have their own richer
// view types; these carry only what a write path needs to decide.

type UserSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type ItemSnapshot struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
}

type BookingSnapshot struct {
	ID          uuid.UUID
	ItemID      uuid.UUID
	ItemOwnerID uuid.UUID
	BookerID    uuid.UUID
	Status      string
	StartDate   time.Time
	EndDate     time.Time
}
