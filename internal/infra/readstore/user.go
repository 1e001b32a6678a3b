package readstore

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(pool db.DBTX) *UserReadStore {
	return &UserReadStore{db: pool}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	query := `SELECT id, name, email, created_at, updated_at FROM users WHERE id = $1`

	var v queries.UserView
	err := r.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.Name, &v.Email, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &v, nil
}

func (r *UserReadStore) FindAll(ctx context.Context) ([]*queries.UserView, error) {
	query := `SELECT id, name, email, created_at, updated_at FROM users ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	result := []*queries.UserView{}
	for rows.Next() {
		var v queries.UserView
		if scanErr := rows.Scan(&v.ID, &v.Name, &v.Email, &v.CreatedAt, &v.UpdatedAt); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", scanErr)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}
	return result, nil
}

func (r *UserReadStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return exists, nil
}
