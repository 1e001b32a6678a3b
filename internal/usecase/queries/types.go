package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookerRef identifies the requesting user inside a booking view.
type BookerRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// BookedItemRef carries the item fields a booking view needs, including
// the owner id used by view authorization.
type BookedItemRef struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"owner_id"`
}

type BookingView struct {
	ID        uuid.UUID     `json:"id"`
	StartDate time.Time     `json:"start_date"`
	EndDate   time.Time     `json:"end_date"`
	Status    string        `json:"status"`
	Booker    BookerRef     `json:"booker"`
	Item      BookedItemRef `json:"item"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	ItemID     uuid.UUID `json:"item_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	Created    time.Time `json:"created"`
}

type ItemView struct {
	ID          uuid.UUID      `json:"id"`
	OwnerID     uuid.UUID      `json:"owner_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Available   bool           `json:"available"`
	Comments    []*CommentView `json:"comments"`
}

// BookingInfo is the compact interval attached to an owner's item listing.
type BookingInfo struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// OwnerItemView is an item as its owner sees it: with the most recent
// booking already started and the next one yet to start.
type OwnerItemView struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Available   bool           `json:"available"`
	LastBooking *BookingInfo   `json:"last_booking,omitempty"`
	NextBooking *BookingInfo   `json:"next_booking,omitempty"`
	Comments    []*CommentView `json:"comments"`
}
