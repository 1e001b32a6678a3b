package writerepo

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
)

type CommentWriteRepository struct{}

func NewCommentWriteRepository() *CommentWriteRepository {
	return &CommentWriteRepository{}
}

func (r *CommentWriteRepository) Create(ctx context.Context, tx db.DBTX, c *item.Comment) error {
	query := `
		INSERT INTO comments (id, item_id, author_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query, c.ID(), c.ItemID(), c.AuthorID(), c.Text(), c.Created())
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("comment references a missing row", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to insert comment", err)
	}
	return nil
}
