package promotion

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName          = errors.New("promotion name cannot be empty")
	ErrNonPositivePrice   = errors.New("discounted price must be positive")
	ErrInvalidWindow      = errors.New("promotion window end must not precede start")
	ErrNoCoveredGames     = errors.New("promotion must cover at least one game")
	ErrDuplicateGameEntry = errors.New("promotion covers the same game twice")
)

// Promotion discounts the covered games to a single flat price while its
// [start, end] window (inclusive, UTC) contains the evaluation instant.
type Promotion struct {
	id              int64
	name            string
	discountedPrice decimal.Decimal
	startsAt        time.Time
	endsAt          time.Time
	gameIDs         []uuid.UUID
}

func NewPromotion(name string, discountedPrice decimal.Decimal, startsAt, endsAt time.Time, gameIDs []uuid.UUID) (*Promotion, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !discountedPrice.IsPositive() {
		return nil, ErrNonPositivePrice
	}
	if endsAt.Before(startsAt) {
		return nil, ErrInvalidWindow
	}
	if len(gameIDs) == 0 {
		return nil, ErrNoCoveredGames
	}
	seen := make(map[uuid.UUID]struct{}, len(gameIDs))
	for _, id := range gameIDs {
		if _, ok := seen[id]; ok {
			return nil, ErrDuplicateGameEntry
		}
		seen[id] = struct{}{}
	}

	return &Promotion{
		name:            name,
		discountedPrice: discountedPrice,
		startsAt:        startsAt.UTC(),
		endsAt:          endsAt.UTC(),
		gameIDs:         gameIDs,
	}, nil
}

func Reconstruct(id int64, name string, discountedPrice decimal.Decimal, startsAt, endsAt time.Time, gameIDs []uuid.UUID) *Promotion {
	return &Promotion{
		id:              id,
		name:            name,
		discountedPrice: discountedPrice,
		startsAt:        startsAt,
		endsAt:          endsAt,
		gameIDs:         gameIDs,
	}
}

// IsActiveAt reports whether the window contains t. Both bounds are inclusive.
func (p *Promotion) IsActiveAt(t time.Time) bool {
	t = t.UTC()
	return !t.Before(p.startsAt) && !t.After(p.endsAt)
}

func (p *Promotion) Covers(gameID uuid.UUID) bool {
	for _, id := range p.gameIDs {
		if id == gameID {
			return true
		}
	}
	return false
}

// PriceFor returns the flat discounted price for covered games and the list
// price unchanged for everything else.
func (p *Promotion) PriceFor(gameID uuid.UUID, listPrice decimal.Decimal) decimal.Decimal {
	if p.Covers(gameID) {
		return p.discountedPrice
	}
	return listPrice
}

func (p *Promotion) ID() int64 { return p.id }

func (p *Promotion) Name() string { return p.name }

func (p *Promotion) DiscountedPrice() decimal.Decimal { return p.discountedPrice }

func (p *Promotion) StartsAt() time.Time { return p.startsAt }

func (p *Promotion) EndsAt() time.Time { return p.endsAt }

func (p *Promotion) GameIDs() []uuid.UUID { return p.gameIDs }
