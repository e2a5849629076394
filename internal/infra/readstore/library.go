package readstore

import (
	"context"

	"gamestore/internal/infra"
	sqlc "gamestore/internal/infra/sqlc/generated"
	"gamestore/internal/pkg/pgconv"
	"gamestore/internal/usecase/queries"

	"github.com/google/uuid"
)

type EntitlementReadQueries interface {
	GetEntitlementByGameAndUser(ctx context.Context, db sqlc.DBTX, arg sqlc.GetEntitlementByGameAndUserParams) (sqlc.Entitlements, error)
	ListGamesOwnedByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Games, error)
}

type EntitlementReadStore struct {
	queries EntitlementReadQueries
	db      sqlc.DBTX
}

func NewEntitlementReadStore(queries EntitlementReadQueries, db sqlc.DBTX) *EntitlementReadStore {
	return &EntitlementReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EntitlementReadStore) Owns(ctx context.Context, gameID, userID uuid.UUID) (bool, error) {
	_, err := r.queries.GetEntitlementByGameAndUser(ctx, r.db, sqlc.GetEntitlementByGameAndUserParams{
		GameID: gameID,
		UserID: userID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to check game ownership", err)
	}
	return true, nil
}

func (r *EntitlementReadStore) FindByGameAndUser(ctx context.Context, gameID, userID uuid.UUID) (*queries.EntitlementView, error) {
	row, err := r.queries.GetEntitlementByGameAndUser(ctx, r.db, sqlc.GetEntitlementByGameAndUserParams{
		GameID: gameID,
		UserID: userID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("entitlement not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find entitlement", err)
	}
	return &queries.EntitlementView{
		ID:        row.ID,
		GameID:    row.GameID,
		UserID:    row.UserID,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *EntitlementReadStore) ListGamesOwnedBy(ctx context.Context, userID uuid.UUID) ([]*queries.GameView, error) {
	rows, err := r.queries.ListGamesOwnedByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list games owned by user", err)
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
