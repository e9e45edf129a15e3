package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"queueline/internal/domain/queue"
	"queueline/internal/infra"
	sqlc "queueline/internal/infra/sqlc/generated"
	"queueline/internal/pkg/pgconv"
	"queueline/internal/usecase/commands"
)

type QueueWriteQueries interface {
	CreateQueue(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateQueueParams) (uuid.UUID, error)
	GetQueueByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetQueueByIDRow, error)
	IncrementQueueNumber(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.IncrementQueueNumberRow, error)
	GetParticipant(ctx context.Context, db sqlc.DBTX, arg sqlc.GetParticipantParams) (sqlc.GetParticipantRow, error)
	CountWaitingParticipants(ctx context.Context, db sqlc.DBTX, queueID uuid.UUID) (int64, error)
	InsertParticipant(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertParticipantParams) error
	DeleteParticipant(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteParticipantParams) (int64, error)
	UpdateParticipantStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateParticipantStatusParams) (int64, error)
	RecomputeWaitingEstimates(ctx context.Context, db sqlc.DBTX, arg sqlc.RecomputeWaitingEstimatesParams) error
	TouchQueue(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type QueueRepository struct {
	queries QueueWriteQueries
}

func NewQueueRepository(queries QueueWriteQueries) *QueueRepository {
	return &QueueRepository{queries: queries}
}

func (r *QueueRepository) Create(ctx context.Context, db sqlc.DBTX, q *queue.Queue) (uuid.UUID, error) {
	id, err := r.queries.CreateQueue(ctx, db, sqlc.CreateQueueParams{
		ID:          q.ID(),
		Code:        q.Code().Value(),
		Name:        q.Name().Value(),
		Description: pgconv.StringToPgtype(q.Description()),
		ServiceTime: q.ServiceTime().Minutes(),
		CreatedBy:   q.CreatedBy(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapDBErr("failed to create queue", err)
	}
	return id, nil
}

func (r *QueueRepository) Exists(ctx context.Context, db sqlc.DBTX, queueID uuid.UUID) (bool, error) {
	_, err := r.queries.GetQueueByID(ctx, db, queueID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapDBErr("failed to find queue", err)
	}
	return true, nil
}

func (r *QueueRepository) NextNumber(ctx context.Context, db sqlc.DBTX, queueID uuid.UUID) (int32, queue.ServiceTime, error) {
	row, err := r.queries.IncrementQueueNumber(ctx, db, queueID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, queue.ServiceTime{}, infra.WrapRepoErr(infra.KindNotFound, "queue not found", err)
		}
		return 0, queue.ServiceTime{}, infra.WrapDBErr("failed to increment queue number", err)
	}
	serviceTime, err := queue.NewServiceTime(row.ServiceTime)
	if err != nil {
		return 0, queue.ServiceTime{}, err
	}
	return row.CurrentNumber, serviceTime, nil
}

func (r *QueueRepository) HasParticipant(ctx context.Context, db sqlc.DBTX, queueID, userID uuid.UUID) (bool, error) {
	_, err := r.queries.GetParticipant(ctx, db, sqlc.GetParticipantParams{QueueID: queueID, UserID: userID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapDBErr("failed to find participant", err)
	}
	return true, nil
}

func (r *QueueRepository) CountWaiting(ctx context.Context, db sqlc.DBTX, queueID uuid.UUID) (int64, error) {
	count, err := r.queries.CountWaitingParticipants(ctx, db, queueID)
	if err != nil {
		return 0, infra.WrapDBErr("failed to count waiting participants", err)
	}
	return count, nil
}

func (r *QueueRepository) AddParticipant(ctx context.Context, db sqlc.DBTX, params commands.AddParticipantParams) error {
	err := r.queries.InsertParticipant(ctx, db, sqlc.InsertParticipantParams{
		ID:                 uuid.New(),
		QueueID:            params.QueueID,
		UserID:             params.UserID,
		Status:             params.Status.String(),
		Number:             params.Number,
		JoinedAt:           pgconv.TimeToPgtype(params.JoinedAt),
		EstimatedStartTime: pgconv.TimePtrToPgtype(params.EstimatedStartTime),
	})
	if err != nil {
		return infra.WrapDBErr("failed to insert participant", err)
	}
	return nil
}

func (r *QueueRepository) RemoveParticipant(ctx context.Context, db sqlc.DBTX, queueID, userID uuid.UUID) (bool, error) {
	affected, err := r.queries.DeleteParticipant(ctx, db, sqlc.DeleteParticipantParams{QueueID: queueID, UserID: userID})
	if err != nil {
		return false, infra.WrapDBErr("failed to delete participant", err)
	}
	return affected > 0, nil
}

func (r *QueueRepository) SetParticipantStatus(ctx context.Context, db sqlc.DBTX, queueID, userID uuid.UUID, status queue.ParticipantStatus) (bool, error) {
	affected, err := r.queries.UpdateParticipantStatus(ctx, db, sqlc.UpdateParticipantStatusParams{
		Status:  status.String(),
		QueueID: queueID,
		UserID:  userID,
	})
	if err != nil {
		return false, infra.WrapDBErr("failed to update participant status", err)
	}
	return affected > 0, nil
}

func (r *QueueRepository) RecomputeWaitingEstimates(ctx context.Context, db sqlc.DBTX, queueID uuid.UUID, base time.Time, serviceTime queue.ServiceTime) error {
	err := r.queries.RecomputeWaitingEstimates(ctx, db, sqlc.RecomputeWaitingEstimatesParams{
		Base:        pgconv.TimeToPgtype(base),
		ServiceTime: serviceTime.Minutes(),
		QueueID:     queueID,
	})
	if err != nil {
		return infra.WrapDBErr("failed to recompute waiting estimates", err)
	}
	return nil
}

func (r *QueueRepository) Touch(ctx context.Context, db sqlc.DBTX, queueID uuid.UUID) error {
	if err := r.queries.TouchQueue(ctx, db, queueID); err != nil {
		return infra.WrapDBErr("failed to touch queue", err)
	}
	return nil
}
