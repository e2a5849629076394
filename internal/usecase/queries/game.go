package queries

import (
	"context"
	"time"

	"gamestore/internal/infra"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrGameNotFound     = errs.New("game not found")
	ErrNoGamesAvailable = errs.New("no games available")
)

// Read models (DTO for read side)
type GameView struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
}

type GameReadStore interface {
	FindActiveByName(ctx context.Context, name string) (*GameView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*GameView, error)
	ListActive(ctx context.Context) ([]*GameView, error)
}

type GameQueries interface {
	ListActive(ctx context.Context) ([]*GameView, error)
	GetByName(ctx context.Context, name string) (*GameView, error)
}

type gameQueriesImpl struct {
	store    GameReadStore
	recorder metrics.Recorder
}

func NewGameQueries(store GameReadStore, recorder metrics.Recorder) GameQueries {
	return &gameQueriesImpl{store: store, recorder: recorder}
}

func (q *gameQueriesImpl) ListActive(ctx context.Context) ([]*GameView, error) {
	views, err := q.store.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrNoGamesAvailable
	}
	q.recorder.IncGamesQueried()
	return views, nil
}

func (q *gameQueriesImpl) GetByName(ctx context.Context, name string) (*GameView, error) {
	view, err := q.store.FindActiveByName(ctx, name)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	q.recorder.IncGamesQueried()
	return view, nil
}
