package commands

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/domain/user"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

// Write-side repository ports. Every mutating method takes the DBTX it
// must run on so a command can group several writes into one transaction.

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	// FindForUpdate locks the booking row for the rest of the transaction,
	// serializing concurrent approval attempts on the same booking.
	FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error
}

type ItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.ItemSnapshot, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	Create(ctx context.Context, tx db.DBTX, i *item.Item) error
	Update(ctx context.Context, tx db.DBTX, i *item.Item) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error)
	FindByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error)
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
	Update(ctx context.Context, tx db.DBTX, u *user.User) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type CommentRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *item.Comment) error
}
