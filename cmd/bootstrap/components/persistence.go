package components

import (
	"queueline/internal/infra/readstore"
	"queueline/internal/infra/repository"
	sqlc "queueline/internal/infra/sqlc/generated"
	"queueline/internal/usecase/commands"
	"queueline/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.UserWriteQueries)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Queue
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.QueueWriteQueries)),
		),
		fx.Annotate(
			repository.NewQueueRepository,
			fx.As(new(commands.QueueRepository)),
		),
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.QueueReadQueries)),
		),
		fx.Annotate(
			readstore.NewQueueReadStore,
			fx.As(new(queries.QueueReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
