//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"gamestore/internal/domain/promotion"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPromotion(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)
	price := decimal.RequireFromString("29.90")
	gameID := uuid.New()

	testCases := []struct {
		name        string
		promoName   string
		price       decimal.Decimal
		startsAt    time.Time
		endsAt      time.Time
		gameIDs     []uuid.UUID
		expectedErr error
	}{
		{
			name:      "success",
			promoName: "summer sale",
			price:     price,
			startsAt:  start,
			endsAt:    end,
			gameIDs:   []uuid.UUID{gameID},
		},
		{
			name:      "success: instant window where start equals end",
			promoName: "flash sale",
			price:     price,
			startsAt:  start,
			endsAt:    start,
			gameIDs:   []uuid.UUID{gameID},
		},
		{
			name:        "error: blank name",
			promoName:   "  ",
			price:       price,
			startsAt:    start,
			endsAt:      end,
			gameIDs:     []uuid.UUID{gameID},
			expectedErr: promotion.ErrEmptyName,
		},
		{
			name:        "error: zero discounted price",
			promoName:   "summer sale",
			price:       decimal.Zero,
			startsAt:    start,
			endsAt:      end,
			gameIDs:     []uuid.UUID{gameID},
			expectedErr: promotion.ErrNonPositivePrice,
		},
		{
			name:        "error: end precedes start",
			promoName:   "summer sale",
			price:       price,
			startsAt:    end,
			endsAt:      start,
			gameIDs:     []uuid.UUID{gameID},
			expectedErr: promotion.ErrInvalidWindow,
		},
		{
			name:        "error: no covered games",
			promoName:   "summer sale",
			price:       price,
			startsAt:    start,
			endsAt:      end,
			gameIDs:     nil,
			expectedErr: promotion.ErrNoCoveredGames,
		},
		{
			name:        "error: duplicate game entry",
			promoName:   "summer sale",
			price:       price,
			startsAt:    start,
			endsAt:      end,
			gameIDs:     []uuid.UUID{gameID, gameID},
			expectedErr: promotion.ErrDuplicateGameEntry,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := promotion.NewPromotion(tc.promoName, tc.price, tc.startsAt, tc.endsAt, tc.gameIDs)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPromotion_IsActiveAt(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	p, err := promotion.NewPromotion("summer sale", decimal.RequireFromString("29.90"), start, end, []uuid.UUID{uuid.New()})
	require.NoError(t, err)

	assert.True(t, p.IsActiveAt(start), "start bound is inclusive")
	assert.True(t, p.IsActiveAt(end), "end bound is inclusive")
	assert.True(t, p.IsActiveAt(start.AddDate(0, 0, 15)))
	assert.False(t, p.IsActiveAt(start.Add(-time.Second)))
	assert.False(t, p.IsActiveAt(end.Add(time.Second)))
}

func TestPromotion_PriceFor(t *testing.T) {
	covered := uuid.New()
	other := uuid.New()
	list := decimal.RequireFromString("59.90")
	discounted := decimal.RequireFromString("29.90")

	p, err := promotion.NewPromotion("summer sale", discounted,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		[]uuid.UUID{covered})
	require.NoError(t, err)

	assert.True(t, p.PriceFor(covered, list).Equal(discounted))
	assert.True(t, p.PriceFor(other, list).Equal(list), "uncovered games keep their list price")
}
