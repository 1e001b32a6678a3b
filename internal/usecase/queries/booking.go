package queries

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	// GetByID returns the booking if the requester is its booker or the
	// owner of its item; any other requester is refused.
	GetByID(ctx context.Context, bookingID, requesterID uuid.UUID) (*BookingView, error)
	ListByBooker(ctx context.Context, bookerID uuid.UUID, state booking.State) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, state booking.State) ([]*BookingView, error)
	// HasPastBooking reports whether the user has a booking of the item
	// that ended before asOf, regardless of its approval status.
	HasPastBooking(ctx context.Context, bookerID, itemID uuid.UUID, asOf time.Time) (bool, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByBooker(ctx context.Context, bookerID uuid.UUID, state booking.State, now time.Time) ([]*BookingView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, state booking.State, now time.Time) ([]*BookingView, error)
	FindPastBookings(ctx context.Context, bookerID, itemID uuid.UUID, before time.Time) ([]*BookingView, error)
}

type UserExistenceStore interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	users UserExistenceStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, users UserExistenceStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, users: users, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, bookingID, requesterID uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if requesterID != view.Booker.ID && requesterID != view.Item.OwnerID {
		return nil, errs.ErrViewNotAllowed
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByBooker(ctx context.Context, bookerID uuid.UUID, state booking.State) ([]*BookingView, error) {
	if err := q.requireUser(ctx, bookerID); err != nil {
		return nil, err
	}
	// One instant for the whole listing, so CURRENT/PAST/FUTURE partition
	// the result set consistently.
	return q.store.FindByBooker(ctx, bookerID, state, q.clock.Now())
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, state booking.State) ([]*BookingView, error) {
	if err := q.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}
	return q.store.FindByOwner(ctx, ownerID, state, q.clock.Now())
}

func (q *bookingQueriesImpl) HasPastBooking(ctx context.Context, bookerID, itemID uuid.UUID, asOf time.Time) (bool, error) {
	past, err := q.store.FindPastBookings(ctx, bookerID, itemID, asOf)
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return len(past) > 0, nil
}

func (q *bookingQueriesImpl) requireUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := q.users.Exists(ctx, userID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !exists {
		return errs.ErrUserNotFound
	}
	return nil
}
