package entitlement

import (
	"time"

	"github.com/google/uuid"
)

// Entitlement records that a user owns a game. The (gameID, userID) pair is
// unique at the persistence layer; a second grant for the same pair collapses
// into the existing record instead of duplicating or erroring.
type Entitlement struct {
	id        uuid.UUID
	gameID    uuid.UUID
	userID    uuid.UUID
	createdAt time.Time
}

func New(gameID, userID uuid.UUID, now time.Time) *Entitlement {
	return &Entitlement{
		id:        uuid.New(),
		gameID:    gameID,
		userID:    userID,
		createdAt: now,
	}
}

func Reconstruct(id, gameID, userID uuid.UUID, createdAt time.Time) *Entitlement {
	return &Entitlement{
		id:        id,
		gameID:    gameID,
		userID:    userID,
		createdAt: createdAt,
	}
}

func (e *Entitlement) ID() uuid.UUID { return e.id }

func (e *Entitlement) GameID() uuid.UUID { return e.gameID }

func (e *Entitlement) UserID() uuid.UUID { return e.userID }

func (e *Entitlement) CreatedAt() time.Time { return e.createdAt }
