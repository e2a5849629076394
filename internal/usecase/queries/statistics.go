package queries

import (
	"context"
	"time"

	"gamestore/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type PlatformStatsView struct {
	GeneratedAt     time.Time       `json:"generated_at"`
	TotalGames      int             `json:"total_games"`
	TotalValue      decimal.Decimal `json:"total_value"`
	AveragePrice    decimal.Decimal `json:"average_price"`
	GamesByCategory []CategoryCount `json:"games_by_category"`
}

type UserStatsView struct {
	GeneratedAt time.Time   `json:"generated_at"`
	UserID      uuid.UUID   `json:"user_id"`
	TotalGames  int         `json:"total_games"`
	Games       []*GameView `json:"games"`
}

// StatisticsQueries aggregates the catalog and per-user libraries into
// report views. An empty catalog or library yields zero stats, never an
// error.
type StatisticsQueries interface {
	Platform(ctx context.Context) (*PlatformStatsView, error)
	User(ctx context.Context, userID uuid.UUID) (*UserStatsView, error)
}

type statisticsQueriesImpl struct {
	games        GameReadStore
	entitlements EntitlementReadStore
	clock        clock.Clock
}

func NewStatisticsQueries(games GameReadStore, entitlements EntitlementReadStore, clk clock.Clock) StatisticsQueries {
	return &statisticsQueriesImpl{
		games:        games,
		entitlements: entitlements,
		clock:        clk,
	}
}

func (q *statisticsQueriesImpl) Platform(ctx context.Context) (*PlatformStatsView, error) {
	views, err := q.games.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	counts := make(map[string]int)
	// Category order follows first appearance in the name-ordered catalog,
	// keeping the report deterministic.
	var order []string
	for _, v := range views {
		total = total.Add(v.Price)
		if _, seen := counts[v.Category]; !seen {
			order = append(order, v.Category)
		}
		counts[v.Category]++
	}

	average := decimal.Zero
	if len(views) > 0 {
		average = total.Div(decimal.NewFromInt(int64(len(views)))).Round(2)
	}

	byCategory := make([]CategoryCount, len(order))
	for i, category := range order {
		byCategory[i] = CategoryCount{Category: category, Count: counts[category]}
	}

	return &PlatformStatsView{
		GeneratedAt:     q.clock.Now().UTC(),
		TotalGames:      len(views),
		TotalValue:      total,
		AveragePrice:    average,
		GamesByCategory: byCategory,
	}, nil
}

func (q *statisticsQueriesImpl) User(ctx context.Context, userID uuid.UUID) (*UserStatsView, error) {
	views, err := q.entitlements.ListGamesOwnedBy(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserStatsView{
		GeneratedAt: q.clock.Now().UTC(),
		UserID:      userID,
		TotalGames:  len(views),
		Games:       views,
	}, nil
}
