package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPeriod  = errors.New("invalid booking period")
	ErrAlreadyDecided = errors.New("booking has already been decided")
	ErrUnknownState   = errors.New("unknown booking state filter")
)

// Booking is the central aggregate: one booker requesting one item for a
// fixed period. Status starts at WAITING and may change at most once.
type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	period    Period
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a WAITING booking for an already validated period.
// Existence of booker and item is the caller's concern; both references
// are bound here and immutable afterwards.
func NewBooking(itemID, bookerID uuid.UUID, period Period) *Booking {
	return &Booking{
		id:       uuid.New(),
		itemID:   itemID,
		bookerID: bookerID,
		period:   period,
		status:   StatusWaiting,
	}
}

func ReconstructBooking(
	id, itemID, bookerID uuid.UUID,
	period Period,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		period:    period,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Decide moves the booking out of WAITING, once. A second decision always
// fails regardless of the approved flag; there is no silent no-op.
func (b *Booking) Decide(approved bool) error {
	if b.status != StatusWaiting {
		return ErrAlreadyDecided
	}
	if approved {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

func (b *Booking) IsWaiting() bool {
	return b.status == StatusWaiting
}

func (b *Booking) HasEnded(now time.Time) bool {
	return b.period.End().Before(now)
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ItemID() uuid.UUID    { return b.itemID }
func (b *Booking) BookerID() uuid.UUID  { return b.bookerID }
func (b *Booking) Period() Period       { return b.period }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
