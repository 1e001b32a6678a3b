package readstore

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingViewColumns = `
	b.id, b.start_date, b.end_date, b.status,
	u.id AS booker_id, u.name AS booker_name,
	i.id AS item_id, i.name AS item_name, i.owner_id,
	b.created_at, b.updated_at
`

const bookingViewFrom = `
	  FROM bookings b
	  JOIN users u ON u.id = b.booker_id
	  JOIN items i ON i.id = b.item_id
`

// statePredicate mirrors the listing filter table: one query, the state
// selects which branch applies. CURRENT is inclusive at both bounds.
const statePredicate = `
	   AND ($2 = 'ALL'
	        OR ($2 = 'CURRENT' AND $3 BETWEEN b.start_date AND b.end_date)
	        OR ($2 = 'PAST' AND b.end_date < $3)
	        OR ($2 = 'FUTURE' AND b.start_date > $3)
	        OR ($2 = 'WAITING' AND b.status = 'WAITING')
	        OR ($2 = 'REJECTED' AND b.status = 'REJECTED'))
`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(pool db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: pool}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := `SELECT ` + bookingViewColumns + bookingViewFrom + ` WHERE b.id = $1`

	view, err := scanBookingView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByBooker(ctx context.Context, bookerID uuid.UUID, state booking.State, now time.Time) ([]*queries.BookingView, error) {
	query := `SELECT ` + bookingViewColumns + bookingViewFrom + `
	 WHERE b.booker_id = $1` + statePredicate + `
	 ORDER BY b.start_date DESC`

	return r.listBookingViews(ctx, query, bookerID, state.String(), now)
}

func (r *BookingReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID, state booking.State, now time.Time) ([]*queries.BookingView, error) {
	query := `SELECT ` + bookingViewColumns + bookingViewFrom + `
	 WHERE i.owner_id = $1` + statePredicate + `
	 ORDER BY b.start_date DESC`

	return r.listBookingViews(ctx, query, ownerID, state.String(), now)
}

func (r *BookingReadStore) FindPastBookings(ctx context.Context, bookerID, itemID uuid.UUID, before time.Time) ([]*queries.BookingView, error) {
	query := `SELECT ` + bookingViewColumns + bookingViewFrom + `
	 WHERE b.booker_id = $1
	   AND b.item_id = $2
	   AND b.end_date < $3
	 ORDER BY b.start_date DESC`

	return r.listBookingViews(ctx, query, bookerID, itemID, before)
}

func (r *BookingReadStore) listBookingViews(ctx context.Context, query string, args ...any) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	result := []*queries.BookingView{}
	for rows.Next() {
		view, scanErr := scanBookingView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.StartDate, &v.EndDate, &v.Status,
		&v.Booker.ID, &v.Booker.Name,
		&v.Item.ID, &v.Item.Name, &v.Item.OwnerID,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
