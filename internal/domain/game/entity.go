package game

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName        = errors.New("game name cannot be empty")
	ErrEmptyDescription = errors.New("game description cannot be empty")
	ErrNegativePrice    = errors.New("game price cannot be negative")
	ErrEmptyCategory    = errors.New("game category cannot be empty")
)

// Game is a catalog entry. Deactivation is a soft delete: the record is kept
// for audit and for entitlements that still reference it.
type Game struct {
	id          uuid.UUID
	name        string
	description string
	price       decimal.Decimal
	category    string
	active      bool
	createdAt   time.Time
}

func NewGame(name, description string, price decimal.Decimal, category string, now time.Time) (*Game, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	category = strings.TrimSpace(category)

	if name == "" {
		return nil, ErrEmptyName
	}
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if category == "" {
		return nil, ErrEmptyCategory
	}

	return &Game{
		id:          uuid.New(),
		name:        name,
		description: description,
		price:       price,
		category:    category,
		active:      true,
		createdAt:   now,
	}, nil
}

func Reconstruct(id uuid.UUID, name, description string, price decimal.Decimal, category string, active bool, createdAt time.Time) *Game {
	return &Game{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		category:    category,
		active:      active,
		createdAt:   createdAt,
	}
}

func (g *Game) Rename(name, description string, price decimal.Decimal, category string) error {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	category = strings.TrimSpace(category)

	if name == "" {
		return ErrEmptyName
	}
	if description == "" {
		return ErrEmptyDescription
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	if category == "" {
		return ErrEmptyCategory
	}

	g.name = name
	g.description = description
	g.price = price
	g.category = category
	return nil
}

func (g *Game) Deactivate() {
	g.active = false
}

func (g *Game) ID() uuid.UUID { return g.id }

func (g *Game) Name() string { return g.name }

func (g *Game) Description() string { return g.description }

func (g *Game) Price() decimal.Decimal { return g.price }

func (g *Game) Category() string { return g.category }

func (g *Game) Active() bool { return g.active }

func (g *Game) CreatedAt() time.Time { return g.createdAt }
