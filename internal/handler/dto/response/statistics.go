package response

import (
	"time"

	"gamestore/internal/usecase/queries"

	"github.com/google/uuid"
)

type CategoryCountResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type PlatformStatisticsResponse struct {
	GeneratedAt     time.Time               `json:"generated_at"`
	TotalGames      int                     `json:"total_games"`
	TotalValue      string                  `json:"total_value"`
	AveragePrice    string                  `json:"average_price"`
	GamesByCategory []CategoryCountResponse `json:"games_by_category"`
}

type UserStatisticsResponse struct {
	GeneratedAt time.Time       `json:"generated_at"`
	UserID      uuid.UUID       `json:"user_id"`
	TotalGames  int             `json:"total_games"`
	Games       []*GameResponse `json:"games"`
}

func FromPlatformStatsView(v *queries.PlatformStatsView) *PlatformStatisticsResponse {
	byCategory := make([]CategoryCountResponse, len(v.GamesByCategory))
	for i, c := range v.GamesByCategory {
		byCategory[i] = CategoryCountResponse{Category: c.Category, Count: c.Count}
	}
	return &PlatformStatisticsResponse{
		GeneratedAt:     v.GeneratedAt,
		TotalGames:      v.TotalGames,
		TotalValue:      v.TotalValue.StringFixed(2),
		AveragePrice:    v.AveragePrice.StringFixed(2),
		GamesByCategory: byCategory,
	}
}

func FromUserStatsView(v *queries.UserStatsView) *UserStatisticsResponse {
	return &UserStatisticsResponse{
		GeneratedAt: v.GeneratedAt,
		UserID:      v.UserID,
		TotalGames:  v.TotalGames,
		Games:       FromGameViews(v.Games),
	}
}
