//go:build unit || e2e

package builder

import (
	"time"

	dombooking "shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	ItemName   string
	ItemOwner  uuid.UUID
	BookerID   uuid.UUID
	BookerName string
	Status     dombooking.Status
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:         uuid.New(),
		ItemID:     uuid.New(),
		ItemName:   "Cordless Drill",
		ItemOwner:  uuid.New(),
		BookerID:   uuid.New(),
		BookerName: "Test Booker",
		Status:     dombooking.StatusWaiting,
		StartDate:  now.Add(24 * time.Hour),
		EndDate:    now.Add(48 * time.Hour),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain(now time.Time) (*dombooking.Booking, error) {
	period, err := dombooking.NewPeriod(b.StartDate, b.EndDate, now)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.ItemID, b.BookerID, period), nil
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID:    b.ItemID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	return &queries.BookingView{
		ID:        b.ID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Status:    b.Status.String(),
		Booker:    queries.BookerRef{ID: b.BookerID, Name: b.BookerName},
		Item:      queries.BookedItemRef{ID: b.ItemID, Name: b.ItemName, OwnerID: b.ItemOwner},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:          b.ID,
		ItemID:      b.ItemID,
		ItemOwnerID: b.ItemOwner,
		BookerID:    b.BookerID,
		Status:      b.Status.String(),
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithItemID(itemID uuid.UUID) *BookingBuilder {
	b.ItemID = itemID
	return b
}

func (b *BookingBuilder) WithItemOwner(ownerID uuid.UUID) *BookingBuilder {
	b.ItemOwner = ownerID
	return b
}

func (b *BookingBuilder) WithBookerID(bookerID uuid.UUID) *BookingBuilder {
	b.BookerID = bookerID
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithPeriod(start, end time.Time) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) AsApproved() *BookingBuilder {
	b.Status = dombooking.StatusApproved
	return b
}

func (b *BookingBuilder) AsPast(now time.Time) *BookingBuilder {
	b.StartDate = now.Add(-48 * time.Hour)
	b.EndDate = now.Add(-24 * time.Hour)
	return b
}
