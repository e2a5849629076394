package response

import (
	"time"

	"gamestore/internal/usecase/queries"

	"github.com/google/uuid"
)

type PromotionResponse struct {
	ID              int64       `json:"id"`
	Name            string      `json:"name"`
	DiscountedPrice string      `json:"discounted_price"`
	StartsAt        time.Time   `json:"starts_at"`
	EndsAt          time.Time   `json:"ends_at"`
	GameIDs         []uuid.UUID `json:"game_ids"`
}

func FromPromotionView(v *queries.PromotionView) *PromotionResponse {
	return &PromotionResponse{
		ID:              v.ID,
		Name:            v.Name,
		DiscountedPrice: v.DiscountedPrice.StringFixed(2),
		StartsAt:        v.StartsAt,
		EndsAt:          v.EndsAt,
		GameIDs:         v.GameIDs,
	}
}
