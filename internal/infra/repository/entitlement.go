package repository

import (
	"context"

	"gamestore/internal/domain/entitlement"
	"gamestore/internal/infra"
	sqlc "gamestore/internal/infra/sqlc/generated"
	"gamestore/internal/pkg/pgconv"
	"gamestore/internal/usecase/queries"
)

type EntitlementWriteQueries interface {
	CreateEntitlement(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEntitlementParams) (sqlc.Entitlements, error)
}

type EntitlementRepository struct {
	queries EntitlementWriteQueries
	db      sqlc.DBTX
}

func NewEntitlementRepository(queries EntitlementWriteQueries, db sqlc.DBTX) *EntitlementRepository {
	return &EntitlementRepository{
		queries: queries,
		db:      db,
	}
}

// Create relies on the unique (game_id, user_id) constraint: the caller maps
// KindDuplicateKey onto the idempotent-success path.
func (r *EntitlementRepository) Create(ctx context.Context, e *entitlement.Entitlement) (*queries.EntitlementView, error) {
	row, err := r.queries.CreateEntitlement(ctx, r.db, sqlc.CreateEntitlementParams{
		ID:        e.ID(),
		GameID:    e.GameID(),
		UserID:    e.UserID(),
		CreatedAt: pgconv.TimeToPgtype(e.CreatedAt()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create entitlement", err)
	}
	return &queries.EntitlementView{
		ID:        row.ID,
		GameID:    row.GameID,
		UserID:    row.UserID,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
