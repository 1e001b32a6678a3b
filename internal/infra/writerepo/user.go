package writerepo

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserWriteRepository struct {
	db db.DBTX
}

// The pool handle serves the command-side lookups that run outside a
// transaction; mutations take their DBTX explicitly.
func NewUserWriteRepository(pool db.DBTX) *UserWriteRepository {
	return &UserWriteRepository{db: pool}
}

func (r *UserWriteRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	query := `SELECT id, name, email FROM users WHERE id = $1`
	return r.scanSnapshot(r.db.QueryRow(ctx, query, id))
}

func (r *UserWriteRepository) FindByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	query := `SELECT id, name, email FROM users WHERE email = $1`
	return r.scanSnapshot(r.db.QueryRow(ctx, query, email))
}

func (r *UserWriteRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	query := `INSERT INTO users (id, name, email) VALUES ($1, $2, $3)`

	_, err := tx.Exec(ctx, query, u.ID(), u.Name(), u.Email())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert user", err)
	}
	return nil
}

func (r *UserWriteRepository) Update(ctx context.Context, tx db.DBTX, u *user.User) error {
	query := `UPDATE users SET name = $2, email = $3, updated_at = now() WHERE id = $1`

	tag, err := tx.Exec(ctx, query, u.ID(), u.Name(), u.Email())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserWriteRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserWriteRepository) scanSnapshot(row pgx.Row) (*shared.UserSnapshot, error) {
	var s shared.UserSnapshot
	if err := row.Scan(&s.ID, &s.Name, &s.Email); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &s, nil
}
