package queue

import (
	"time"

	"github.com/google/uuid"
)

// Queue is the aggregate root: a named waiting line owned by one admin.
// currentNumber is the last-assigned participant sequence number; it only
// ever grows, numbers freed by leaving participants are never reassigned.
type Queue struct {
	id            uuid.UUID
	code          Code
	name          Name
	description   string
	serviceTime   ServiceTime
	createdBy     uuid.UUID
	active        bool
	currentNumber int32
	createdAt     time.Time
	updatedAt     time.Time
}

func NewQueue(name Name, description string, serviceTime ServiceTime, code Code, createdBy uuid.UUID) *Queue {
	return &Queue{
		id:          uuid.New(),
		code:        code,
		name:        name,
		description: description,
		serviceTime: serviceTime,
		createdBy:   createdBy,
		active:      true,
	}
}

func ReconstructQueue(
	id uuid.UUID,
	code Code,
	name Name,
	description string,
	serviceTime ServiceTime,
	createdBy uuid.UUID,
	active bool,
	currentNumber int32,
	createdAt, updatedAt time.Time,
) *Queue {
	return &Queue{
		id:            id,
		code:          code,
		name:          name,
		description:   description,
		serviceTime:   serviceTime,
		createdBy:     createdBy,
		active:        active,
		currentNumber: currentNumber,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (q *Queue) ID() uuid.UUID            { return q.id }
func (q *Queue) Code() Code               { return q.code }
func (q *Queue) Name() Name               { return q.name }
func (q *Queue) Description() string      { return q.description }
func (q *Queue) ServiceTime() ServiceTime { return q.serviceTime }
func (q *Queue) CreatedBy() uuid.UUID     { return q.createdBy }
func (q *Queue) Active() bool             { return q.active }
func (q *Queue) CurrentNumber() int32     { return q.currentNumber }
func (q *Queue) CreatedAt() time.Time     { return q.createdAt }
func (q *Queue) UpdatedAt() time.Time     { return q.updatedAt }

func (q *Queue) IsOwnedBy(userID uuid.UUID) bool {
	return q.createdBy == userID
}
