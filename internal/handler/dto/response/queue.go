package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"queueline/internal/usecase/queries"
)

type QueueParticipantResponse struct {
	UserID             uuid.UUID  `json:"userId"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Status             string     `json:"status"`
	Number             int32      `json:"number"`
	JoinedAt           time.Time  `json:"joinedAt"`
	EstimatedStartTime *time.Time `json:"estimatedStartTime,omitempty"`
	Position           int        `json:"position"`
}

type QueueResponse struct {
	ID            uuid.UUID                  `json:"id"`
	Code          string                     `json:"code"`
	Name          string                     `json:"name"`
	Description   *string                    `json:"description,omitempty"`
	ServiceTime   int32                      `json:"serviceTime"`
	CreatedBy     uuid.UUID                  `json:"createdBy"`
	Active        bool                       `json:"active"`
	CurrentNumber int32                      `json:"currentNumber"`
	Participants  []QueueParticipantResponse `json:"participants"`
	CreatedAt     time.Time                  `json:"createdAt"`
	UpdatedAt     time.Time                  `json:"updatedAt"`
}

func FromQueueView(view *queries.QueueView) (*QueueResponse, error) {
	var resp QueueResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	if resp.Participants == nil {
		resp.Participants = []QueueParticipantResponse{}
	}
	return &resp, nil
}

func FromQueueViews(views []*queries.QueueView) ([]*QueueResponse, error) {
	resps := make([]*QueueResponse, 0, len(views))
	for _, view := range views {
		resp, err := FromQueueView(view)
		if err != nil {
			return nil, err
		}
		resps = append(resps, resp)
	}
	return resps, nil
}

type MessageResponse struct {
	Message string `json:"message"`
}
