package request

import (
	"strings"

	"queueline/internal/usecase/commands"
)

type CreateQueueRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ServiceTime int32  `json:"serviceTime" binding:"omitempty,min=1"`
}

func (r CreateQueueRequest) ToCommand() commands.CreateQueueInput {
	return commands.CreateQueueInput{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		ServiceTime: r.ServiceTime,
	}
}

type UpdateParticipantStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
