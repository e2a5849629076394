//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gamestore/internal/infra"
	"gamestore/internal/pkg/clock"
	"gamestore/internal/pkg/metrics"
	"gamestore/internal/usecase/commands"
	"gamestore/internal/usecase/queries"
	commandsmock "gamestore/tests/mock/commands"
	queriesmock "gamestore/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newGameUseCase(ctrl *gomock.Controller) (commands.GameCommands, *commandsmock.MockGameRepository, *queriesmock.MockGameReadStore) {
	repo := commandsmock.NewMockGameRepository(ctrl)
	reads := queriesmock.NewMockGameReadStore(ctrl)
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	uc := commands.NewGameCommands(repo, reads, metrics.NewNopRecorder(), clk)
	return uc, repo, reads
}

func validParams() commands.GameParams {
	return commands.GameParams{
		Name:        "Hollow Depths",
		Description: "Dive into the abyss",
		Price:       decimal.RequireFromString("59.90"),
		Category:    "action",
	}
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo, reads := newGameUseCase(ctrl)

	ctx := context.Background()
	params := validParams()

	reads.EXPECT().FindActiveByName(ctx, params.Name).Return(nil, notFoundErr())
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, g any) (*queries.GameView, error) {
			return &queries.GameView{ID: uuid.New(), Name: params.Name, Price: params.Price, Active: true}, nil
		})

	view, err := uc.Register(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, params.Name, view.Name)
	assert.True(t, view.Active)
}

func TestRegister_ActiveNameConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, reads := newGameUseCase(ctrl)

	ctx := context.Background()
	params := validParams()

	reads.EXPECT().FindActiveByName(ctx, params.Name).
		Return(&queries.GameView{ID: uuid.New(), Name: params.Name, Active: true}, nil)

	_, err := uc.Register(ctx, params)
	assert.ErrorIs(t, err, commands.ErrGameAlreadyExists)
}

func TestRegister_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, reads := newGameUseCase(ctrl)

	ctx := context.Background()
	params := validParams()
	params.Price = decimal.RequireFromString("-1.00")

	reads.EXPECT().FindActiveByName(ctx, params.Name).Return(nil, notFoundErr())

	_, err := uc.Register(ctx, params)
	assert.ErrorIs(t, err, commands.ErrGameValidation)
}

func TestUpdate_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, reads := newGameUseCase(ctrl)

	ctx := context.Background()
	reads.EXPECT().FindActiveByName(ctx, "Missing").Return(nil, notFoundErr())

	_, err := uc.Update(ctx, "Missing", validParams())
	assert.ErrorIs(t, err, queries.ErrGameNotFound)
}

func TestUpdate_RenameOntoExistingNameConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo, reads := newGameUseCase(ctrl)

	ctx := context.Background()
	current := &queries.GameView{
		ID:          uuid.New(),
		Name:        "Hollow Depths",
		Description: "Dive into the abyss",
		Price:       decimal.RequireFromString("59.90"),
		Category:    "action",
		Active:      true,
	}
	params := validParams()
	params.Name = "Celeste"

	reads.EXPECT().FindActiveByName(ctx, "Hollow Depths").Return(current, nil)
	dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
	repo.EXPECT().Update(ctx, gomock.Any()).
		Return(nil, infra.WrapRepoErr("failed to update game", dup, infra.KindDuplicateKey))

	_, err := uc.Update(ctx, "Hollow Depths", params)
	assert.ErrorIs(t, err, commands.ErrGameAlreadyExists)
}

func TestDeactivate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo, reads := newGameUseCase(ctrl)

	ctx := context.Background()
	id := uuid.New()
	current := &queries.GameView{ID: id, Name: "Hollow Depths", Active: true}

	reads.EXPECT().FindActiveByName(ctx, "Hollow Depths").Return(current, nil)
	repo.EXPECT().Deactivate(ctx, id).
		Return(&queries.GameView{ID: id, Name: "Hollow Depths", Active: false}, nil)

	view, err := uc.Deactivate(ctx, "Hollow Depths")
	require.NoError(t, err)
	assert.False(t, view.Active)
}
