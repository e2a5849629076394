package commands

import (
	"context"

	"gamestore/internal/domain/game"
	"gamestore/internal/infra"
	"gamestore/internal/pkg/clock"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/metrics"
	"gamestore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrGameAlreadyExists       = errs.New("game already registered")
	ErrGameValidation          = errs.New("game validation failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type GameRepository interface {
	Create(ctx context.Context, g *game.Game) (*queries.GameView, error)
	Update(ctx context.Context, g *game.Game) (*queries.GameView, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*queries.GameView, error)
}

type GameParams struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
}

type GameCommands interface {
	Register(ctx context.Context, params GameParams) (*queries.GameView, error)
	Update(ctx context.Context, name string, params GameParams) (*queries.GameView, error)
	Deactivate(ctx context.Context, name string) (*queries.GameView, error)
}

type gameUseCaseImpl struct {
	repo     GameRepository
	reads    queries.GameReadStore
	recorder metrics.Recorder
	clock    clock.Clock
}

func NewGameCommands(repo GameRepository, reads queries.GameReadStore, recorder metrics.Recorder, clk clock.Clock) GameCommands {
	return &gameUseCaseImpl{
		repo:     repo,
		reads:    reads,
		recorder: recorder,
		clock:    clk,
	}
}

// Register rejects a name collision among active games only; a deactivated
// game's name may be reused.
func (u *gameUseCaseImpl) Register(ctx context.Context, params GameParams) (*queries.GameView, error) {
	_, err := u.reads.FindActiveByName(ctx, params.Name)
	if err == nil {
		return nil, ErrGameAlreadyExists
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := game.NewGame(params.Name, params.Description, params.Price, params.Category, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrGameValidation)
	}

	view, err := u.repo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrGameAlreadyExists
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.recorder.IncGamesCreated()
	return view, nil
}

func (u *gameUseCaseImpl) Update(ctx context.Context, name string, params GameParams) (*queries.GameView, error) {
	current, err := u.reads.FindActiveByName(ctx, name)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, queries.ErrGameNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity := game.Reconstruct(
		current.ID, current.Name, current.Description,
		current.Price, current.Category, current.Active, current.CreatedAt,
	)
	if err := entity.Rename(params.Name, params.Description, params.Price, params.Category); err != nil {
		return nil, errs.Mark(err, ErrGameValidation)
	}

	view, err := u.repo.Update(ctx, entity)
	if err != nil {
		// Renaming onto another active game's name trips the same unique
		// index as Register.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrGameAlreadyExists
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// Deactivate is a soft delete: the row survives for audit and for existing
// entitlements.
func (u *gameUseCaseImpl) Deactivate(ctx context.Context, name string) (*queries.GameView, error) {
	current, err := u.reads.FindActiveByName(ctx, name)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, queries.ErrGameNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := u.repo.Deactivate(ctx, current.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
