package readstore

import (
	"context"
	"time"

	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(pool db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: pool}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	query := `SELECT id, owner_id, name, description, available FROM items WHERE id = $1`

	var v queries.ItemView
	err := r.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.OwnerID, &v.Name, &v.Description, &v.Available)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by id", err)
	}
	v.Comments = []*queries.CommentView{}
	return &v, nil
}

// FindByOwnerWithBookings resolves last/next booking per item with lateral
// subqueries so the listing stays a single round trip. Only APPROVED and
// WAITING bookings count; REJECTED ones never surface here.
func (r *ItemReadStore) FindByOwnerWithBookings(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]*queries.OwnerItemView, error) {
	query := `
		SELECT i.id, i.name, i.description, i.available,
		       lb.start_date, lb.end_date,
		       nb.start_date, nb.end_date
		  FROM items i
		  LEFT JOIN LATERAL (
		        SELECT b.start_date, b.end_date
		          FROM bookings b
		         WHERE b.item_id = i.id
		           AND b.status IN ('APPROVED', 'WAITING')
		           AND b.start_date <= $2
		         ORDER BY b.start_date DESC
		         LIMIT 1
		  ) lb ON true
		  LEFT JOIN LATERAL (
		        SELECT b.start_date, b.end_date
		          FROM bookings b
		         WHERE b.item_id = i.id
		           AND b.status IN ('APPROVED', 'WAITING')
		           AND b.start_date > $2
		         ORDER BY b.start_date ASC
		         LIMIT 1
		  ) nb ON true
		 WHERE i.owner_id = $1
		 ORDER BY i.created_at`

	rows, err := r.db.Query(ctx, query, ownerID, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owner items", err)
	}
	defer rows.Close()

	result := []*queries.OwnerItemView{}
	for rows.Next() {
		var v queries.OwnerItemView
		var lastStart, lastEnd, nextStart, nextEnd pgtype.Timestamptz
		err := rows.Scan(
			&v.ID, &v.Name, &v.Description, &v.Available,
			&lastStart, &lastEnd,
			&nextStart, &nextEnd,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan owner item row", err)
		}
		v.LastBooking = bookingInfo(lastStart, lastEnd)
		v.NextBooking = bookingInfo(nextStart, nextEnd)
		v.Comments = []*queries.CommentView{}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read owner item rows", err)
	}
	return result, nil
}

// Both bounds come from the same lateral row, so either both are set or
// neither is.
func bookingInfo(start, end pgtype.Timestamptz) *queries.BookingInfo {
	s := pgconv.TimePtrFromPgtype(start)
	e := pgconv.TimePtrFromPgtype(end)
	if s == nil || e == nil {
		return nil
	}
	return &queries.BookingInfo{StartDate: *s, EndDate: *e}
}

func (r *ItemReadStore) SearchAvailable(ctx context.Context, text string) ([]*queries.ItemView, error) {
	query := `
		SELECT id, owner_id, name, description, available
		  FROM items
		 WHERE available
		   AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, text)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	defer rows.Close()

	result := []*queries.ItemView{}
	for rows.Next() {
		var v queries.ItemView
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.Name, &v.Description, &v.Available); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		v.Comments = []*queries.CommentView{}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", err)
	}
	return result, nil
}

func (r *ItemReadStore) FindCommentsByItem(ctx context.Context, itemID uuid.UUID) ([]*queries.CommentView, error) {
	query := commentViewQuery + ` WHERE c.item_id = $1 ORDER BY c.created_at`
	return r.listCommentViews(ctx, query, itemID)
}

func (r *ItemReadStore) FindCommentsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.CommentView, error) {
	query := commentViewQuery + `
		  JOIN items i ON i.id = c.item_id
		 WHERE i.owner_id = $1
		 ORDER BY c.created_at`
	return r.listCommentViews(ctx, query, ownerID)
}

const commentViewQuery = `
	SELECT c.id, c.item_id, u.name AS author_name, c.text, c.created_at
	  FROM comments c
	  JOIN users u ON u.id = c.author_id`

func (r *ItemReadStore) listCommentViews(ctx context.Context, query string, args ...any) ([]*queries.CommentView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	defer rows.Close()

	result := []*queries.CommentView{}
	for rows.Next() {
		view, scanErr := scanCommentView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read comment rows", err)
	}
	return result, nil
}

func scanCommentView(row pgx.Row) (*queries.CommentView, error) {
	var v queries.CommentView
	if err := row.Scan(&v.ID, &v.ItemID, &v.AuthorName, &v.Text, &v.Created); err != nil {
		return nil, err
	}
	return &v, nil
}
