package shared

import (
	"context"

	"shareit/internal/infra/db"
)

// TxManager runs a unit of work inside one database transaction. The
// approval path relies on this to keep its read-check-write sequence
// atomic per booking row.
type TxManager interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}
