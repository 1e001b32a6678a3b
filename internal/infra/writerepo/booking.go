package writerepo

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingWriteRepository struct{}

func NewBookingWriteRepository() *BookingWriteRepository {
	return &BookingWriteRepository{}
}

func (r *BookingWriteRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	query := `
		INSERT INTO bookings (id, item_id, booker_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, query,
		b.ID(), b.ItemID(), b.BookerID(),
		b.Period().Start(), b.Period().End(), string(b.Status()),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("booking references a missing row", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

// FindForUpdate joins the item so the caller gets the owner id in the same
// locked read. The lock covers only the booking row.
func (r *BookingWriteRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error) {
	query := `
		SELECT b.id, b.item_id, i.owner_id, b.booker_id, b.status, b.start_date, b.end_date
		  FROM bookings b
		  JOIN items i ON i.id = b.item_id
		 WHERE b.id = $1
		   FOR UPDATE OF b`

	var s shared.BookingSnapshot
	err := tx.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.ItemID, &s.ItemOwnerID, &s.BookerID,
		&s.Status, &s.StartDate, &s.EndDate,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return &s, nil
}

func (r *BookingWriteRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error {
	query := `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
