//go:build unit || e2e

package builder

import (
	"time"

	reqdto "queueline/internal/handler/dto/request"
	"queueline/internal/usecase/queries"

	"github.com/google/uuid"
)

type QueueBuilder struct {
	Name          string
	Description   string
	ServiceTime   int32
	Code          string
	CreatedBy     uuid.UUID
	CurrentNumber int32
	Participants  []queries.QueueParticipantView
}

func NewQueueBuilder() *QueueBuilder {
	return &QueueBuilder{
		Name:        "Test Queue",
		Description: "queue for tests",
		ServiceTime: 5,
		Code:        "abc123xyz",
		CreatedBy:   uuid.New(),
	}
}

func (q *QueueBuilder) BuildDTO() reqdto.CreateQueueRequest {
	return reqdto.CreateQueueRequest{
		Name:        q.Name,
		Description: q.Description,
		ServiceTime: q.ServiceTime,
	}
}

func (q *QueueBuilder) BuildReadModel() *queries.QueueView {
	now := time.Now()
	desc := q.Description
	return &queries.QueueView{
		ID:            uuid.New(),
		Code:          q.Code,
		Name:          q.Name,
		Description:   &desc,
		ServiceTime:   q.ServiceTime,
		CreatedBy:     q.CreatedBy,
		Active:        true,
		CurrentNumber: q.CurrentNumber,
		Participants:  q.Participants,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (q *QueueBuilder) WithName(name string) *QueueBuilder {
	q.Name = name
	return q
}

func (q *QueueBuilder) WithServiceTime(minutes int32) *QueueBuilder {
	q.ServiceTime = minutes
	return q
}

func (q *QueueBuilder) WithParticipant(userID uuid.UUID, status string, number int32, position int) *QueueBuilder {
	q.Participants = append(q.Participants, queries.QueueParticipantView{
		UserID:   userID,
		Name:     "Participant",
		Email:    "participant@example.com",
		Status:   status,
		Number:   number,
		JoinedAt: time.Now(),
		Position: position,
	})
	q.CurrentNumber = max(q.CurrentNumber, number)
	return q
}
