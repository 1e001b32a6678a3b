package queries

import (
	"context"
	"strings"
	"time"

	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

type ItemQueries interface {
	GetByID(ctx context.Context, itemID uuid.UUID) (*ItemView, error)
	// ListByOwner returns the owner's items with last/next booking info
	// relative to the current instant, ordered by creation.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*OwnerItemView, error)
	// Search matches available items whose name or description contains
	// the text, case-insensitively. Blank text yields an empty result.
	Search(ctx context.Context, text string) ([]*ItemView, error)
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	FindByOwnerWithBookings(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]*OwnerItemView, error)
	SearchAvailable(ctx context.Context, text string) ([]*ItemView, error)
	FindCommentsByItem(ctx context.Context, itemID uuid.UUID) ([]*CommentView, error)
	FindCommentsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*CommentView, error)
}

type itemQueriesImpl struct {
	store ItemReadStore
	clock clock.Clock
}

func NewItemQueries(store ItemReadStore, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{store: store, clock: clk}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, itemID uuid.UUID) (*ItemView, error) {
	view, err := q.store.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrItemNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	comments, err := q.store.FindCommentsByItem(ctx, itemID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	view.Comments = comments
	return view, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*OwnerItemView, error) {
	views, err := q.store.FindByOwnerWithBookings(ctx, ownerID, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	comments, err := q.store.FindCommentsByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	byItem := make(map[uuid.UUID][]*CommentView, len(views))
	for _, c := range comments {
		byItem[c.ItemID] = append(byItem[c.ItemID], c)
	}
	for _, v := range views {
		if cs, ok := byItem[v.ID]; ok {
			v.Comments = cs
		} else {
			v.Comments = []*CommentView{}
		}
	}
	return views, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string) ([]*ItemView, error) {
	if strings.TrimSpace(text) == "" {
		return []*ItemView{}, nil
	}
	views, err := q.store.SearchAvailable(ctx, text)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
