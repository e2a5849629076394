package repository

import (
	"context"

	"gamestore/internal/domain/game"
	"gamestore/internal/infra"
	sqlc "gamestore/internal/infra/sqlc/generated"
	"gamestore/internal/pkg/pgconv"
	"gamestore/internal/usecase/queries"

	"github.com/google/uuid"
)

type GameWriteQueries interface {
	CreateGame(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateGameParams) (sqlc.Games, error)
	UpdateGame(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateGameParams) (sqlc.Games, error)
	DeactivateGame(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Games, error)
}

type GameRepository struct {
	queries GameWriteQueries
	db      sqlc.DBTX
}

func NewGameRepository(queries GameWriteQueries, db sqlc.DBTX) *GameRepository {
	return &GameRepository{
		queries: queries,
		db:      db,
	}
}

func (r *GameRepository) Create(ctx context.Context, g *game.Game) (*queries.GameView, error) {
	row, err := r.queries.CreateGame(ctx, r.db, sqlc.CreateGameParams{
		ID:          g.ID(),
		Name:        g.Name(),
		Description: g.Description(),
		Price:       pgconv.DecimalToNumeric(g.Price()),
		Category:    g.Category(),
		Active:      g.Active(),
		CreatedAt:   pgconv.TimeToPgtype(g.CreatedAt()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create game", err)
	}
	return toGameViewFromRow(row)
}

func (r *GameRepository) Update(ctx context.Context, g *game.Game) (*queries.GameView, error) {
	row, err := r.queries.UpdateGame(ctx, r.db, sqlc.UpdateGameParams{
		ID:          g.ID(),
		Name:        g.Name(),
		Description: g.Description(),
		Price:       pgconv.DecimalToNumeric(g.Price()),
		Category:    g.Category(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("game not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update game", err)
	}
	return toGameViewFromRow(row)
}

func (r *GameRepository) Deactivate(ctx context.Context, id uuid.UUID) (*queries.GameView, error) {
	row, err := r.queries.DeactivateGame(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("game not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to deactivate game", err)
	}
	return toGameViewFromRow(row)
}

func toGameViewFromRow(row sqlc.Games) (*queries.GameView, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert game price", err)
	}
	return &queries.GameView{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       price,
		Category:    row.Category,
		Active:      row.Active,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
