package commands

import (
	"context"
	"log/slog"

	"gamestore/internal/domain/entitlement"
	"gamestore/internal/infra"
	"gamestore/internal/pkg/clock"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/usecase/queries"

	"github.com/google/uuid"
)

type EntitlementRepository interface {
	Create(ctx context.Context, e *entitlement.Entitlement) (*queries.EntitlementView, error)
}

type LibraryCommands interface {
	Grant(ctx context.Context, gameID, userID uuid.UUID) (*queries.EntitlementView, error)
}

type libraryUseCaseImpl struct {
	repo   EntitlementRepository
	reads  queries.EntitlementReadStore
	clock  clock.Clock
	logger *slog.Logger
}

func NewLibraryCommands(repo EntitlementRepository, reads queries.EntitlementReadStore, clk clock.Clock, logger *slog.Logger) LibraryCommands {
	return &libraryUseCaseImpl{
		repo:   repo,
		reads:  reads,
		clock:  clk,
		logger: logger,
	}
}

// Grant is idempotent. Two concurrent purchase attempts for the same
// (user, game) pair can both pass the earlier duplicate check; the unique
// constraint makes whichever grant lands second collapse into the existing
// record instead of duplicating.
func (u *libraryUseCaseImpl) Grant(ctx context.Context, gameID, userID uuid.UUID) (*queries.EntitlementView, error) {
	if gameID == uuid.Nil || userID == uuid.Nil {
		return nil, ErrInvalidPurchaseArgument
	}

	view, err := u.repo.Create(ctx, entitlement.New(gameID, userID, u.clock.Now()))
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			u.logger.Info("entitlement already granted, returning existing record",
				"game_id", gameID, "user_id", userID)
			return u.reads.FindByGameAndUser(ctx, gameID, userID)
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, queries.ErrGameNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
