package response

import (
	"time"

	"gamestore/internal/usecase/queries"

	"github.com/google/uuid"
)

type GameResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Category    string    `json:"category"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromGameView(v *queries.GameView) *GameResponse {
	return &GameResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price.StringFixed(2),
		Category:    v.Category,
		Active:      v.Active,
		CreatedAt:   v.CreatedAt,
	}
}

func FromGameViews(views []*queries.GameView) []*GameResponse {
	result := make([]*GameResponse, len(views))
	for i, v := range views {
		result[i] = FromGameView(v)
	}
	return result
}
