package readstore

import (
	"context"
	"time"

	"gamestore/internal/infra"
	sqlc "gamestore/internal/infra/sqlc/generated"
	"gamestore/internal/pkg/pgconv"
	"gamestore/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type PromotionReadQueries interface {
	GetActivePromotion(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (sqlc.Promotions, error)
}

type PromotionReadStore struct {
	queries PromotionReadQueries
	db      sqlc.DBTX
}

func NewPromotionReadStore(queries PromotionReadQueries, db sqlc.DBTX) *PromotionReadStore {
	return &PromotionReadStore{
		queries: queries,
		db:      db,
	}
}

// FindActiveAt returns the earliest-starting promotion whose inclusive window
// contains at; the database ordering makes the pick deterministic.
func (r *PromotionReadStore) FindActiveAt(ctx context.Context, at time.Time) (*queries.PromotionView, error) {
	row, err := r.queries.GetActivePromotion(ctx, r.db, pgconv.TimeToPgtype(at))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no active promotion", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active promotion", err)
	}

	price, err := pgconv.DecimalFromNumeric(row.DiscountedPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert promotion price", err)
	}
	return &queries.PromotionView{
		ID:              row.ID,
		Name:            row.Name,
		DiscountedPrice: price,
		StartsAt:        pgconv.TimeFromPgtype(row.StartsAt),
		EndsAt:          pgconv.TimeFromPgtype(row.EndsAt),
		GameIDs:         row.GameIds,
	}, nil
}
