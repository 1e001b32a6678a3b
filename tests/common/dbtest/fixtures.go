//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, name, email) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING",
		userID, name, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestItem(t *testing.T, db DBLike, ownerID uuid.UUID, name, description string, available bool) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO items (id, owner_id, name, description, available) VALUES ($1, $2, $3, $4, $5)",
		itemID, ownerID, name, description, available)
	require.NoError(t, err)

	return itemID
}

func CreateTestBooking(t *testing.T, db DBLike, itemID, bookerID uuid.UUID, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO bookings (id, item_id, booker_id, start_date, end_date, status) VALUES ($1, $2, $3, $4, $5, $6)",
		bookingID, itemID, bookerID, start, end, status)
	require.NoError(t, err)

	return bookingID
}

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE users, items, bookings, comments RESTART IDENTITY CASCADE")
	return err
}
