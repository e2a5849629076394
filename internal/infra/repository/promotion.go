package repository

import (
	"context"

	"gamestore/internal/domain/promotion"
	"gamestore/internal/infra"
	sqlc "gamestore/internal/infra/sqlc/generated"
	"gamestore/internal/pkg/pgconv"
	"gamestore/internal/usecase/queries"
)

type PromotionWriteQueries interface {
	CreatePromotion(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePromotionParams) (sqlc.Promotions, error)
	DeletePromotion(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type PromotionRepository struct {
	queries PromotionWriteQueries
	db      sqlc.DBTX
}

func NewPromotionRepository(queries PromotionWriteQueries, db sqlc.DBTX) *PromotionRepository {
	return &PromotionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PromotionRepository) Create(ctx context.Context, p *promotion.Promotion) (*queries.PromotionView, error) {
	row, err := r.queries.CreatePromotion(ctx, r.db, sqlc.CreatePromotionParams{
		Name:            p.Name(),
		DiscountedPrice: pgconv.DecimalToNumeric(p.DiscountedPrice()),
		StartsAt:        pgconv.TimeToPgtype(p.StartsAt()),
		EndsAt:          pgconv.TimeToPgtype(p.EndsAt()),
		GameIds:         p.GameIDs(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create promotion", err)
	}
	return toPromotionViewFromRow(row)
}

func (r *PromotionRepository) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := r.queries.DeletePromotion(ctx, r.db, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete promotion", err)
	}
	return affected, nil
}

func toPromotionViewFromRow(row sqlc.Promotions) (*queries.PromotionView, error) {
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
