package writerepo

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

type ItemWriteRepository struct {
	db db.DBTX
}

func NewItemWriteRepository(pool db.DBTX) *ItemWriteRepository {
	return &ItemWriteRepository{db: pool}
}

func (r *ItemWriteRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	query := `SELECT id, owner_id, name, description, available FROM items WHERE id = $1`

	var s shared.ItemSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.OwnerID, &s.Name, &s.Description, &s.Available)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item", err)
	}
	return &s, nil
}

func (r *ItemWriteRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	query := `SELECT count(*) FROM items WHERE owner_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count owner items", err)
	}
	return count, nil
}

func (r *ItemWriteRepository) Create(ctx context.Context, tx db.DBTX, i *item.Item) error {
	query := `
		INSERT INTO items (id, owner_id, name, description, available)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query, i.ID(), i.OwnerID(), i.Name(), i.Description(), i.Available())
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("item owner does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to insert item", err)
	}
	return nil
}

func (r *ItemWriteRepository) Update(ctx context.Context, tx db.DBTX, i *item.Item) error {
	query := `
		UPDATE items
		   SET name = $2, description = $3, available = $4, updated_at = now()
		 WHERE id = $1`

	tag, err := tx.Exec(ctx, query, i.ID(), i.Name(), i.Description(), i.Available())
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemWriteRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	query := `DELETE FROM items WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}
