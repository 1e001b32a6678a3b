package queries

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserQueries interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindAll(ctx context.Context) ([]*UserView, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	view, err := q.store.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *userQueriesImpl) List(ctx context.Context) ([]*UserView, error) {
	views, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
