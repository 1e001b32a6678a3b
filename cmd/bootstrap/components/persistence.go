package components

import (
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/infra/readstore"
	"shareit/internal/infra/writerepo"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		infra.NewPgxTxManager,
		// Write-side repositories
		fx.Annotate(
			writerepo.NewUserWriteRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			writerepo.NewItemWriteRepository,
			fx.As(new(commands.ItemRepository)),
		),
		fx.Annotate(
			writerepo.NewBookingWriteRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			writerepo.NewCommentWriteRepository,
			fx.As(new(commands.CommentRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewItemReadStore,
			fx.As(new(queries.ItemReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(queries.UserExistenceStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
