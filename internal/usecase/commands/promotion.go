package commands

import (
	"context"
	"time"

	"gamestore/internal/domain/promotion"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPromotionNotFound   = errs.New("promotion not found")
	ErrPromotionValidation = errs.New("promotion validation failed")
)

type PromotionRepository interface {
	Create(ctx context.Context, p *promotion.Promotion) (*queries.PromotionView, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type CreatePromotionParams struct {
	Name            string
	DiscountedPrice decimal.Decimal
	StartsAt        time.Time
	EndsAt          time.Time
	GameIDs         []uuid.UUID
}

type PromotionCommands interface {
	Create(ctx context.Context, params CreatePromotionParams) (*queries.PromotionView, error)
	Remove(ctx context.Context, id int64) error
}

type promotionUseCaseImpl struct {
	repo PromotionRepository
}

func NewPromotionCommands(repo PromotionRepository) PromotionCommands {
	return &promotionUseCaseImpl{repo: repo}
}

func (u *promotionUseCaseImpl) Create(ctx context.Context, params CreatePromotionParams) (*queries.PromotionView, error) {
	entity, err := promotion.NewPromotion(
		params.Name,
		params.DiscountedPrice,
		params.StartsAt,
		params.EndsAt,
		params.GameIDs,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrPromotionValidation)
	}

	view, err := u.repo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// Remove is a hard delete; removal of an already-removed promotion reports
// not found.
func (u *promotionUseCaseImpl) Remove(ctx context.Context, id int64) error {
	affected, err := u.repo.Delete(ctx, id)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if affected == 0 {
		return ErrPromotionNotFound
	}
	return nil
}
