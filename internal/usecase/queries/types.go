package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// QueueParticipantView is one membership row with the owning user resolved
// to display attributes. Position is the 1-based rank among still-active
// participants, 0 for completed ones.
type QueueParticipantView struct {
	UserID             uuid.UUID  `json:"userId"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Status             string     `json:"status"`
	Number             int32      `json:"number"`
	JoinedAt           time.Time  `json:"joinedAt"`
	EstimatedStartTime *time.Time `json:"estimatedStartTime,omitempty"`
	Position           int        `json:"position"`
}

// QueueView is the full queue snapshot: what the REST surface returns and
// what the realtime channel broadcasts after every mutation.
type QueueView struct {
	ID            uuid.UUID              `json:"id"`
	Code          string                 `json:"code"`
	Name          string                 `json:"name"`
	Description   *string                `json:"description,omitempty"`
	ServiceTime   int32                  `json:"serviceTime"`
	CreatedBy     uuid.UUID              `json:"createdBy"`
	Active        bool                   `json:"active"`
	CurrentNumber int32                  `json:"currentNumber"`
	Participants  []QueueParticipantView `json:"participants"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
