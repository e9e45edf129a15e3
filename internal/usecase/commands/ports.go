package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"queueline/internal/domain/queue"
	"queueline/internal/domain/user"
	sqlc "queueline/internal/infra/sqlc/generated"
	"queueline/internal/usecase/queries"
)

// SnapshotPublisher fans a fresh queue snapshot out to realtime
// subscribers. Publishing is best-effort: failures are logged by the
// implementation and never roll back the mutation that produced the
// snapshot.
type SnapshotPublisher interface {
	PublishQueueUpdated(queueID uuid.UUID, snapshot *queries.QueueView)
}

type UserRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, u *user.User) (uuid.UUID, error)
}

type AddParticipantParams struct {
	QueueID            uuid.UUID
	UserID             uuid.UUID
	Status             queue.ParticipantStatus
	Number             int32
	JoinedAt           time.Time
	EstimatedStartTime *time.Time
}

type QueueRepository interface {
	Create(ctx context.Context, db sqlc.DBTX, q *queue.Queue) (uuid.UUID, error)
	Exists(ctx context.Context, db sqlc.DBTX, queueID uuid.UUID) (bool, error)
	// NextNumber atomically increments the queue counter and returns the
	// claimed number together with the queue's service time.
	NextNumber(ctx context.Context, db sqlc.DBTX, queueID uuid.UUID) (int32, queue.ServiceTime, error)
	HasParticipant(ctx context.Context, db sqlc.DBTX, queueID, userID uuid.UUID) (bool, error)
	CountWaiting(ctx context.Context, db sqlc.DBTX, queueID uuid.UUID) (int64, error)
	AddParticipant(ctx context.Context, db sqlc.DBTX, params AddParticipantParams) error
	RemoveParticipant(ctx context.Context, db sqlc.DBTX, queueID, userID uuid.UUID) (bool, error)
	SetParticipantStatus(ctx context.Context, db sqlc.DBTX, queueID, userID uuid.UUID, status queue.ParticipantStatus) (bool, error)
	// RecomputeWaitingEstimates rewrites estimated_start_time for every
	// waiting participant as base + index * serviceTime, ordered by number.
	RecomputeWaitingEstimates(ctx context.Context, db sqlc.DBTX, queueID uuid.UUID, base time.Time, serviceTime queue.ServiceTime) error
	Touch(ctx context.Context, db sqlc.DBTX, queueID uuid.UUID) error
}
