package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"gamestore/internal/infra"
	"gamestore/internal/pkg/errs"
	"gamestore/internal/pkg/metrics"
	"gamestore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPurchaseArgument = errs.New("invalid purchase argument")
	ErrAlreadyOwned            = errs.New("game already owned")
	ErrInvalidResolvedPrice    = errs.New("resolved price is not positive")
	ErrInsufficientFunds       = errs.New("insufficient funds")
	ErrWalletUnavailable       = errs.New("wallet service unavailable")
	ErrSettlementUnavailable   = errs.New("settlement channel unavailable")
)

// SettlementEvent is the wallet-debit intent handed off to the messaging
// subsystem. It is immutable once constructed; the orchestrator holds no
// reference after a successful publish.
type SettlementEvent struct {
	GameID uuid.UUID       `json:"gameId"`
	UserID uuid.UUID       `json:"userId"`
	Amount decimal.Decimal `json:"amount"`
}

// PurchaseReceipt acknowledges acceptance, not completed settlement. The
// actual funds movement and the entitlement grant happen asynchronously
// downstream.
type PurchaseReceipt struct {
	UserID uuid.UUID `json:"user_id"`
	GameID uuid.UUID `json:"game_id"`
}

type WalletGateway interface {
	BalanceOf(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

type SettlementPublisher interface {
	Publish(ctx context.Context, event SettlementEvent) error
}

type PurchaseCommands interface {
	Purchase(ctx context.Context, gameName string, userID uuid.UUID) (*PurchaseReceipt, error)
}

type purchaseUseCaseImpl struct {
	games        queries.GameReadStore
	entitlements queries.EntitlementReadStore
	promotions   queries.PromotionQueries
	wallet       WalletGateway
	settlements  SettlementPublisher
	recorder     metrics.Recorder
	logger       *slog.Logger
}

func NewPurchaseCommands(
	games queries.GameReadStore,
	entitlements queries.EntitlementReadStore,
	promotions queries.PromotionQueries,
	wallet WalletGateway,
	settlements SettlementPublisher,
	recorder metrics.Recorder,
	logger *slog.Logger,
) PurchaseCommands {
	return &purchaseUseCaseImpl{
		games:        games,
		entitlements: entitlements,
		promotions:   promotions,
		wallet:       wallet,
		settlements:  settlements,
		recorder:     recorder,
		logger:       logger,
	}
}

// Purchase runs the purchase decision end to end and hands settlement off to
// the messaging subsystem. Preconditions are checked in a fixed order and
// short-circuit on the first failure; no Game or Entitlement state is mutated
// here. Success means the settlement event was accepted, nothing more.
func (u *purchaseUseCaseImpl) Purchase(ctx context.Context, gameName string, userID uuid.UUID) (*PurchaseReceipt, error) {
	gameName = strings.TrimSpace(gameName)
	if gameName == "" || userID == uuid.Nil {
		return nil, ErrInvalidPurchaseArgument
	}

	gameView, err := u.games.FindActiveByName(ctx, gameName)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, queries.ErrGameNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	owned, err := u.entitlements.Owns(ctx, gameView.ID, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if owned {
		return nil, ErrAlreadyOwned
	}

	price := u.resolvePrice(ctx, gameView)
	if !price.IsPositive() {
		// Data-integrity defect, not a business outcome the caller can act on.
		u.logger.Error("resolved price is not positive",
			"game_id", gameView.ID, "game_name", gameView.Name, "price", price.String())
		return nil, ErrInvalidResolvedPrice
	}

	balance, err := u.wallet.BalanceOf(ctx, userID)
	if err != nil {
		// A gateway failure is not the same as a low balance.
		return nil, errs.Mark(err, ErrWalletUnavailable)
	}
	if balance.LessThan(price) {
		return nil, ErrInsufficientFunds
	}

	event := SettlementEvent{GameID: gameView.ID, UserID: userID, Amount: price}
	if err := u.settlements.Publish(ctx, event); err != nil {
		return nil, errs.Mark(err, ErrSettlementUnavailable)
	}

	u.recorder.IncGamesPurchased()
	u.logger.Info("purchase accepted",
		"game_id", gameView.ID, "user_id", userID, "amount", price.String())

	return &PurchaseReceipt{UserID: userID, GameID: gameView.ID}, nil
}

// A promotion-lookup failure must never block a purchase: anything other than
// an active promotion falls back to the list price.
func (u *purchaseUseCaseImpl) resolvePrice(ctx context.Context, g *queries.GameView) decimal.Decimal {
	promo, err := u.promotions.Active(ctx)
	if err != nil {
		if !errors.Is(err, queries.ErrNoActivePromotion) {
			u.logger.Warn("promotion lookup failed, falling back to list price", "error", err)
		}
		return g.Price
	}
	return promo.PriceFor(g.ID, g.Price)
}
