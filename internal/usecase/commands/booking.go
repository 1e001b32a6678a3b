package commands

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ItemID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

type BookingCommands interface {
	// Create validates the proposed interval and references, then stores
	// a WAITING booking. All violated date rules are reported together.
	Create(ctx context.Context, bookerID uuid.UUID, req CreateBookingRequest) (*queries.BookingView, error)
	// Approve decides a WAITING booking. Only the item owner may decide,
	// and only once; the row is locked for the duration of the check.
	Approve(ctx context.Context, bookingID, actorID uuid.UUID, approved bool) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookings     BookingRepository
	items        ItemRepository
	users        UserRepository
	bookingReads queries.BookingReadStore
	tx           shared.TxManager
	clock        clock.Clock
}

func NewBookingCommands(
	bookings BookingRepository,
	items ItemRepository,
	users UserRepository,
	bookingReads queries.BookingReadStore,
	tx shared.TxManager,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings:     bookings,
		items:        items,
		users:        users,
		bookingReads: bookingReads,
		tx:           tx,
		clock:        clk,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, bookerID uuid.UUID, req CreateBookingRequest) (*queries.BookingView, error) {
	period, err := booking.NewPeriod(req.StartDate, req.EndDate, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPeriod)
	}

	if _, err = c.users.FindByID(ctx, bookerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	itemSnap, err := c.items.FindByID(ctx, req.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrItemNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !itemSnap.Available {
		return nil, errs.ErrItemUnavailable
	}

	entity := booking.NewBooking(req.ItemID, bookerID, period)

	err = c.tx.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return c.bookings.Create(ctx, tx, entity)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.readBack(ctx, entity.ID())
}

func (c *bookingCommandsImpl) Approve(ctx context.Context, bookingID, actorID uuid.UUID, approved bool) (*queries.BookingView, error) {
	err := c.tx.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		snap, ferr := c.bookings.FindForUpdate(ctx, tx, bookingID)
		if ferr != nil {
			if infra.IsKind(ferr, infra.KindNotFound) {
				return errs.Mark(ferr, errs.ErrBookingNotFound)
			}
			return errs.Mark(ferr, errs.ErrDatabaseOperationFailed)
		}

		if snap.ItemOwnerID != actorID {
			return errs.ErrNotItemOwner
		}

		entity := booking.ReconstructBooking(
			snap.ID, snap.ItemID, snap.BookerID,
			booking.ReconstructPeriod(snap.StartDate, snap.EndDate),
			booking.Status(snap.Status),
			time.Time{}, time.Time{},
		)
		if derr := entity.Decide(approved); derr != nil {
			return errs.Mark(derr, errs.ErrAlreadyDecided)
		}

		if uerr := c.bookings.UpdateStatus(ctx, tx, bookingID, entity.Status()); uerr != nil {
			return errs.Mark(uerr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.readBack(ctx, bookingID)
}

// Read-after-write: return the stored view so the caller sees exactly
// what was persisted.
func (c *bookingCommandsImpl) readBack(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := c.bookingReads.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
