package readstore

import (
	"context"

	"gamestore/internal/infra"
	sqlc "gamestore/internal/infra/sqlc/generated"
	"gamestore/internal/pkg/pgconv"
	"gamestore/internal/usecase/queries"

	"github.com/google/uuid"
)

type GameReadQueries interface {
	GetActiveGameByName(ctx context.Context, db sqlc.DBTX, name string) (sqlc.Games, error)
	GetGameByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Games, error)
	ListActiveGames(ctx context.Context, db sqlc.DBTX) ([]sqlc.Games, error)
}

type GameReadStore struct {
	queries GameReadQueries
	db      sqlc.DBTX
}

func NewGameReadStore(queries GameReadQueries, db sqlc.DBTX) *GameReadStore {
	return &GameReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *GameReadStore) FindActiveByName(ctx context.Context, name string) (*queries.GameView, error) {
	row, err := r.queries.GetActiveGameByName(ctx, r.db, name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("game not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find game by name", err)
	}
	return rowToGameView(row)
}

func (r *GameReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GameView, error) {
	row, err := r.queries.GetGameByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("game not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find game by ID", err)
	}
	return rowToGameView(row)
}

func (r *GameReadStore) ListActive(ctx context.Context) ([]*queries.GameView, error) {
	rows, err := r.queries.ListActiveGames(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active games", err)
	}

	result := make([]*queries.GameView, len(rows))
	for i, row := range rows {
		view, err := rowToGameView(row)
		if err != nil {
			return nil, err
		}
		result[i] = view
	}
	return result, nil
}

func rowToGameView(row sqlc.Games) (*queries.GameView, error) {
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
