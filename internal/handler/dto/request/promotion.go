package request

import (
	"strings"
	"time"

	"gamestore/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountedPrice is a pointer for the same reason as the game DTOs: required
// validation on a struct-typed decimal never fires.
type CreatePromotionRequest struct {
	Name            string           `json:"name" binding:"required"`
	DiscountedPrice *decimal.Decimal `json:"discounted_price" binding:"required"`
	StartsAt        time.Time        `json:"starts_at" binding:"required"`
	EndsAt          time.Time        `json:"ends_at" binding:"required"`
	GameIDs         []uuid.UUID      `json:"game_ids" binding:"required"`
}

func (r CreatePromotionRequest) ToParams() commands.CreatePromotionParams {
	return commands.CreatePromotionParams{
		Name:            strings.TrimSpace(r.Name),
		DiscountedPrice: *r.DiscountedPrice,
		StartsAt:        r.StartsAt,
		EndsAt:          r.EndsAt,
		GameIDs:         r.GameIDs,
	}
}
