package queries

import (
	"context"

	"github.com/google/uuid"

	"queueline/internal/infra"
	"queueline/internal/pkg/errs"
)

var ErrQueueNotFound = errs.New("queue not found")

type QueueQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*QueueView, error)
	GetByCode(ctx context.Context, code string) (*QueueView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*QueueView, error)
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*QueueView, error)
}

type QueueReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*QueueView, error)
	FindByCode(ctx context.Context, code string) (*QueueView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*QueueView, error)
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*QueueView, error)
}

type queueQueries struct {
	reader QueueReadStore
}

func NewQueueQueries(reader QueueReadStore) QueueQueries {
	return &queueQueries{reader: reader}
}

func (q *queueQueries) GetByID(ctx context.Context, id uuid.UUID) (*QueueView, error) {
	view, err := q.reader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrQueueNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *queueQueries) GetByCode(ctx context.Context, code string) (*QueueView, error) {
	view, err := q.reader.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrQueueNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *queueQueries) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*QueueView, error) {
	return q.reader.ListByOwner(ctx, ownerID)
}

func (q *queueQueries) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*QueueView, error) {
	return q.reader.ListByParticipant(ctx, userID)
}
