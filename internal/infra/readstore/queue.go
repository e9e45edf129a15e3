package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"queueline/internal/domain/queue"
	"queueline/internal/infra"
	sqlc "queueline/internal/infra/sqlc/generated"
	"queueline/internal/pkg/pgconv"
	"queueline/internal/usecase/queries"
)

type QueueReadQueries interface {
	GetQueueByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetQueueByIDRow, error)
	GetQueueByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.GetQueueByCodeRow, error)
	ListQueuesByOwner(ctx context.Context, db sqlc.DBTX, createdBy uuid.UUID) ([]sqlc.ListQueuesByOwnerRow, error)
	ListQueuesByParticipant(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListQueuesByParticipantRow, error)
	ListQueueParticipants(ctx context.Context, db sqlc.DBTX, queueID uuid.UUID) ([]sqlc.ListQueueParticipantsRow, error)
}

type QueueReadStore struct {
	queries QueueReadQueries
	db      sqlc.DBTX
}

func NewQueueReadStore(q QueueReadQueries, db sqlc.DBTX) *QueueReadStore {
	return &QueueReadStore{queries: q, db: db}
}

// queueHead is the shared shape of every queue row the read queries return.
type queueHead struct {
	ID            uuid.UUID
	Code          string
	Name          string
	Description   *string
	ServiceTime   int32
	CreatedBy     uuid.UUID
	Active        bool
	CurrentNumber int32
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func headFromByIDRow(row sqlc.GetQueueByIDRow) queueHead {
	return queueHead{
		ID:            row.ID,
		Code:          row.Code,
		Name:          row.Name,
		Description:   pgconv.StringPtrFromPgtype(row.Description),
		ServiceTime:   row.ServiceTime,
		CreatedBy:     row.CreatedBy,
		Active:        row.Active,
		CurrentNumber: row.CurrentNumber,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func headFromByCodeRow(row sqlc.GetQueueByCodeRow) queueHead {
	return headFromByIDRow(sqlc.GetQueueByIDRow(row))
}

func headFromOwnerRow(row sqlc.ListQueuesByOwnerRow) queueHead {
	return headFromByIDRow(sqlc.GetQueueByIDRow(row))
}

func headFromParticipantRow(row sqlc.ListQueuesByParticipantRow) queueHead {
	return headFromByIDRow(sqlc.GetQueueByIDRow(row))
}

func (s *QueueReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.QueueView, error) {
	row, err := s.queries.GetQueueByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "queue not found", err)
		}
		return nil, infra.WrapDBErr("failed to find queue by id", err)
	}
	return s.assemble(ctx, headFromByIDRow(row))
}

func (s *QueueReadStore) FindByCode(ctx context.Context, code string) (*queries.QueueView, error) {
	row, err := s.queries.GetQueueByCode(ctx, s.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "queue not found", err)
		}
		return nil, infra.WrapDBErr("failed to find queue by code", err)
	}
	return s.assemble(ctx, headFromByCodeRow(row))
}

func (s *QueueReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.QueueView, error) {
	rows, err := s.queries.ListQueuesByOwner(ctx, s.db, ownerID)
	if err != nil {
		return nil, infra.WrapDBErr("failed to list queues by owner", err)
	}
	views := make([]*queries.QueueView, 0, len(rows))
	for _, row := range rows {
		view, err := s.assemble(ctx, headFromOwnerRow(row))
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *QueueReadStore) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*queries.QueueView, error) {
	rows, err := s.queries.ListQueuesByParticipant(ctx, s.db, userID)
	if err != nil {
		return nil, infra.WrapDBErr("failed to list queues by participant", err)
	}
	views := make([]*queries.QueueView, 0, len(rows))
	for _, row := range rows {
		view, err := s.assemble(ctx, headFromParticipantRow(row))
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// assemble loads the membership rows for one queue and projects positions
// onto them. Rows arrive ordered by number, so standings are already sorted.
func (s *QueueReadStore) assemble(ctx context.Context, head queueHead) (*queries.QueueView, error) {
	rows, err := s.queries.ListQueueParticipants(ctx, s.db, head.ID)
	if err != nil {
		return nil, infra.WrapDBErr("failed to list queue participants", err)
	}

	standings := make([]queue.Standing, 0, len(rows))
	for _, row := range rows {
		standings = append(standings, queue.Standing{
			Number: row.Number,
			Status: queue.ParticipantStatus(row.Status),
		})
	}

	participants := make([]queries.QueueParticipantView, 0, len(rows))
	for _, row := range rows {
		participants = append(participants, queries.QueueParticipantView{
			UserID:             row.UserID,
			Name:               row.UserName,
			Email:              row.UserEmail,
			Status:             row.Status,
			Number:             row.Number,
			JoinedAt:           pgconv.TimeFromPgtype(row.JoinedAt),
			EstimatedStartTime: pgconv.TimePtrFromPgtype(row.EstimatedStartTime),
			Position:           queue.Position(standings, row.Number),
		})
	}

	return &queries.QueueView{
		ID:            head.ID,
		Code:          head.Code,
		Name:          head.Name,
		Description:   head.Description,
		ServiceTime:   head.ServiceTime,
		CreatedBy:     head.CreatedBy,
		Active:        head.Active,
		CurrentNumber: head.CurrentNumber,
		Participants:  participants,
		CreatedAt:     head.CreatedAt,
		UpdatedAt:     head.UpdatedAt,
	}, nil
}
