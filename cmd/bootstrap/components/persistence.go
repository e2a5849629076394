package components

import (
	"gamestore/internal/infra/publisher"
	"gamestore/internal/infra/readstore"
	"gamestore/internal/infra/repository"
	sqlc "gamestore/internal/infra/sqlc/generated"
	"gamestore/internal/usecase/commands"
	"gamestore/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Game
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.GameReadQueries)),
		),
		fx.Annotate(
			readstore.NewGameReadStore,
			fx.As(new(queries.GameReadStore)),
		),
		// Promotion
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PromotionReadQueries)),
		),
		fx.Annotate(
			readstore.NewPromotionReadStore,
			fx.As(new(queries.PromotionReadStore)),
		),
		// Entitlement
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.EntitlementReadQueries)),
		),
		fx.Annotate(
			readstore.NewEntitlementReadStore,
			fx.As(new(queries.EntitlementReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Game
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.GameWriteQueries)),
		),
		fx.Annotate(
			repository.NewGameRepository,
			fx.As(new(commands.GameRepository)),
		),
		// Promotion
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.PromotionWriteQueries)),
		),
		fx.Annotate(
			repository.NewPromotionRepository,
			fx.As(new(commands.PromotionRepository)),
		),
		// Entitlement
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.EntitlementWriteQueries)),
		),
		fx.Annotate(
			repository.NewEntitlementRepository,
			fx.As(new(commands.EntitlementRepository)),
		),
		// Settlement outbox
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.OutboxWriteQueries)),
		),
		fx.Annotate(
			repository.NewOutboxRepository,
			fx.As(new(publisher.OutboxStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
