package queries

import (
	"context"
	"time"

	"gamestore/internal/infra"
	"gamestore/internal/pkg/clock"
	"gamestore/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNoActivePromotion = errs.New("no active promotion")

type PromotionView struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
	StartsAt        time.Time       `json:"starts_at"`
	EndsAt          time.Time       `json:"ends_at"`
	GameIDs         []uuid.UUID     `json:"game_ids"`
}

func (v *PromotionView) Covers(gameID uuid.UUID) bool {
	for _, id := range v.GameIDs {
		if id == gameID {
			return true
		}
	}
	return false
}

// PriceFor returns the flat discounted price for a covered game and the list
// price unchanged otherwise.
func (v *PromotionView) PriceFor(gameID uuid.UUID, listPrice decimal.Decimal) decimal.Decimal {
	if v.Covers(gameID) {
		return v.DiscountedPrice
	}
	return listPrice
}

type PromotionReadStore interface {
	FindActiveAt(ctx context.Context, at time.Time) (*PromotionView, error)
}

// PromotionQueries resolves the single active promotion: among all windows
// containing now (UTC), the earliest-starting one wins; the rest are ignored.
type PromotionQueries interface {
	Active(ctx context.Context) (*PromotionView, error)
}

type promotionQueriesImpl struct {
	store PromotionReadStore
	clock clock.Clock
}

func NewPromotionQueries(store PromotionReadStore, clk clock.Clock) PromotionQueries {
	return &promotionQueriesImpl{store: store, clock: clk}
}

func (q *promotionQueriesImpl) Active(ctx context.Context) (*PromotionView, error) {
	view, err := q.store.FindActiveAt(ctx, q.clock.Now().UTC())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoActivePromotion
		}
		return nil, err
	}
	return view, nil
}
