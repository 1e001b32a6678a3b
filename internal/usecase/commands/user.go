package commands

import (
	"context"
	"time"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Name  string
	Email string
}

type UpdateUserRequest struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	Create(ctx context.Context, req CreateUserRequest) (*queries.UserView, error)
	Update(ctx context.Context, userID uuid.UUID, req UpdateUserRequest) (*queries.UserView, error)
	// Delete refuses while the user still owns items.
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userCommandsImpl struct {
	users     UserRepository
	items     ItemRepository
	userReads queries.UserReadStore
	tx        shared.TxManager
}

func NewUserCommands(users UserRepository, items ItemRepository, userReads queries.UserReadStore, tx shared.TxManager) UserCommands {
	return &userCommandsImpl{users: users, items: items, userReads: userReads, tx: tx}
}

func (c *userCommandsImpl) Create(ctx context.Context, req CreateUserRequest) (*queries.UserView, error) {
	entity, err := user.NewUser(req.Name, req.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.requireFreeEmail(ctx, entity.Email(), uuid.Nil); err != nil {
		return nil, err
	}

	err = c.tx.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return c.users.Create(ctx, tx, entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrEmailConflict)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.readBack(ctx, entity.ID())
}

func (c *userCommandsImpl) Update(ctx context.Context, userID uuid.UUID, req UpdateUserRequest) (*queries.UserView, error) {
	snap, err := c.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity := user.ReconstructUser(snap.ID, snap.Name, snap.Email, time.Time{}, time.Time{})
	if err := entity.ApplyPatch(req.Name, req.Email); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.requireFreeEmail(ctx, entity.Email(), userID); err != nil {
		return nil, err
	}

	err = c.tx.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return c.users.Update(ctx, tx, entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrEmailConflict)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.readBack(ctx, userID)
}

func (c *userCommandsImpl) Delete(ctx context.Context, userID uuid.UUID) error {
	owned, err := c.items.CountByOwner(ctx, userID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if owned > 0 {
		return errs.ErrUserHasItems
	}

	return c.tx.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if derr := c.users.Delete(ctx, tx, userID); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// requireFreeEmail rejects an email already held by a different user.
// The unique index on users.email remains the real guarantee; this only
// produces the friendlier conflict error before the write.
func (c *userCommandsImpl) requireFreeEmail(ctx context.Context, email string, selfID uuid.UUID) error {
	existing, err := c.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if existing.ID != selfID {
		return errs.ErrEmailConflict
	}
	return nil
}

func (c *userCommandsImpl) readBack(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	view, err := c.userReads.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
