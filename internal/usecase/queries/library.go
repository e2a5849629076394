package queries

import (
	"context"
	"time"

	"gamestore/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrEmptyLibrary is a caller-visible "no games in library" condition, not a
// genuine failure.
var ErrEmptyLibrary = errs.New("user library is empty")

type EntitlementView struct {
	ID        uuid.UUID `json:"id"`
	GameID    uuid.UUID `json:"game_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type EntitlementReadStore interface {
	Owns(ctx context.Context, gameID, userID uuid.UUID) (bool, error)
	FindByGameAndUser(ctx context.Context, gameID, userID uuid.UUID) (*EntitlementView, error)
	ListGamesOwnedBy(ctx context.Context, userID uuid.UUID) ([]*GameView, error)
}

type LibraryQueries interface {
	GamesOwnedBy(ctx context.Context, userID uuid.UUID) ([]*GameView, error)
}

type libraryQueriesImpl struct {
	store EntitlementReadStore
}

func NewLibraryQueries(store EntitlementReadStore) LibraryQueries {
	return &libraryQueriesImpl{store: store}
}

func (q *libraryQueriesImpl) GamesOwnedBy(ctx context.Context, userID uuid.UUID) ([]*GameView, error) {
	views, err := q.store.ListGamesOwnedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrEmptyLibrary
	}
	return views, nil
}
