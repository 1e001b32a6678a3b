package commands

import (
	"context"
	"time"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name        string
	Description string
	Available   *bool
}

type UpdateItemRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

// PastBookingChecker answers whether a user has a finished booking of an
// item, which is what gates commenting.
type PastBookingChecker interface {
	HasPastBooking(ctx context.Context, bookerID, itemID uuid.UUID, asOf time.Time) (bool, error)
}

type ItemCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, req CreateItemRequest) (*queries.ItemView, error)
	// Update applies a partial patch; only the owner may change an item.
	Update(ctx context.Context, itemID, actorID uuid.UUID, req UpdateItemRequest) (*queries.ItemView, error)
	Delete(ctx context.Context, itemID uuid.UUID) error
	// AddComment stores feedback from a user with a finished booking of
	// the item. Approval status of that booking is not consulted.
	AddComment(ctx context.Context, itemID, authorID uuid.UUID, text string) (*queries.CommentView, error)
}

type itemCommandsImpl struct {
	items        ItemRepository
	users        UserRepository
	comments     CommentRepository
	itemReads    queries.ItemReadStore
	pastBookings PastBookingChecker
	tx           shared.TxManager
	clock        clock.Clock
}

func NewItemCommands(
	items ItemRepository,
	users UserRepository,
	comments CommentRepository,
	itemReads queries.ItemReadStore,
	pastBookings PastBookingChecker,
	tx shared.TxManager,
	clk clock.Clock,
) ItemCommands {
	return &itemCommandsImpl{
		items:        items,
		users:        users,
		comments:     comments,
		itemReads:    itemReads,
		pastBookings: pastBookings,
		tx:           tx,
		clock:        clk,
	}
}

func (c *itemCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, req CreateItemRequest) (*queries.ItemView, error) {
	if err := c.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}

	entity, err := item.NewItem(ownerID, req.Name, req.Description, req.Available)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.tx.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return c.items.Create(ctx, tx, entity)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.readBack(ctx, entity.ID())
}

func (c *itemCommandsImpl) Update(ctx context.Context, itemID, actorID uuid.UUID, req UpdateItemRequest) (*queries.ItemView, error) {
	snap, err := c.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrItemNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := c.requireUser(ctx, actorID); err != nil {
		return nil, err
	}

	entity := item.ReconstructItem(snap.ID, snap.OwnerID, snap.Name, snap.Description, snap.Available, time.Time{}, time.Time{})
	if !entity.IsOwnedBy(actorID) {
		return nil, errs.ErrNotItemOwner
	}
	entity.ApplyPatch(req.Name, req.Description, req.Available)

	err = c.tx.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return c.items.Update(ctx, tx, entity)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.readBack(ctx, itemID)
}

func (c *itemCommandsImpl) Delete(ctx context.Context, itemID uuid.UUID) error {
	return c.tx.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if derr := c.items.Delete(ctx, tx, itemID); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *itemCommandsImpl) AddComment(ctx context.Context, itemID, authorID uuid.UUID, text string) (*queries.CommentView, error) {
	if _, err := c.items.FindByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrItemNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	author, err := c.users.FindByID(ctx, authorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	moment := c.clock.Now()

	eligible, err := c.pastBookings.HasPastBooking(ctx, authorID, itemID, moment)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, errs.ErrCommentNotAllowed
	}

	entity, err := item.NewComment(itemID, authorID, text, moment)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.tx.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return c.comments.Create(ctx, tx, entity)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &queries.CommentView{
		ID:         entity.ID(),
		ItemID:     entity.ItemID(),
		AuthorName: author.Name,
		Text:       entity.Text(),
		Created:    entity.Created(),
	}, nil
}

func (c *itemCommandsImpl) requireUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := c.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrUserNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *itemCommandsImpl) readBack(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	view, err := c.itemReads.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if view.Comments == nil {
		view.Comments = []*queries.CommentView{}
	}
	return view, nil
}
