package repository

import (
	"context"
	"time"

	"gamestore/internal/infra"
	sqlc "gamestore/internal/infra/sqlc/generated"
	"gamestore/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// OutboxMessage is a durably-accepted settlement event awaiting (or past)
// broker delivery.
type OutboxMessage struct {
	ID        uuid.UUID
	Topic     string
	Key       string
	Payload   []byte
	Status    string
	Attempts  int32
	LastError *string
	CreatedAt time.Time
}

type OutboxWriteQueries interface {
	CreateOutboxMessage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOutboxMessageParams) (sqlc.SettlementOutbox, error)
	ListPendingOutboxMessages(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPendingOutboxMessagesParams) ([]sqlc.SettlementOutbox, error)
	MarkOutboxPublished(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxPublishedParams) error
	MarkOutboxFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxFailedParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, topic, key string, payload []byte, now time.Time) (uuid.UUID, error) {
	row, err := r.queries.CreateOutboxMessage(ctx, r.db, sqlc.CreateOutboxMessageParams{
		ID:        uuid.New(),
		Topic:     topic,
		Key:       key,
		Payload:   payload,
		CreatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to enqueue outbox message", err)
	}
	return row.ID, nil
}

// PendingBatch returns pending rows created at or before the cutoff, oldest
// first. The relay uses the cutoff to skip rows whose synchronous delivery is
// still in flight.
func (r *OutboxRepository) PendingBatch(ctx context.Context, createdBefore time.Time, limit int32) ([]OutboxMessage, error) {
	rows, err := r.queries.ListPendingOutboxMessages(ctx, r.db, sqlc.ListPendingOutboxMessagesParams{
		CreatedAt: pgconv.TimeToPgtype(createdBefore),
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending outbox messages", err)
	}

	result := make([]OutboxMessage, len(rows))
	for i, row := range rows {
		result[i] = OutboxMessage{
			ID:        row.ID,
			Topic:     row.Topic,
			Key:       row.Key,
			Payload:   row.Payload,
			Status:    row.Status,
			Attempts:  row.Attempts,
			LastError: pgconv.StringPtrFromPgtype(row.LastError),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) error {
	err := r.queries.MarkOutboxPublished(ctx, r.db, sqlc.MarkOutboxPublishedParams{
		ID:          id,
		PublishedAt: pgconv.TimeToPgtype(publishedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox message published", err)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastError string) error {
	err := r.queries.MarkOutboxFailed(ctx, r.db, sqlc.MarkOutboxFailedParams{
		ID:        id,
		LastError: pgconv.StringToPgtype(lastError),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox message failed", err)
	}
	return nil
}
