package api

import (
	"errors"
	"net/http"

	reqdto "queueline/internal/handler/dto/request"
	resdto "queueline/internal/handler/dto/response"
	"queueline/internal/handler/middleware"
	"queueline/internal/usecase/commands"
	"queueline/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QueueHandler struct {
	queueCommands commands.QueueCommands
	queueQueries  queries.QueueQueries
}

func NewQueueHandler(queueCommands commands.QueueCommands, queueQueries queries.QueueQueries) *QueueHandler {
	return &QueueHandler{
		queueCommands: queueCommands,
		queueQueries:  queueQueries,
	}
}

// @Summary Create queue
// @Description Create a new waiting line with a generated join code
// @Tags queues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateQueueRequest true "Queue request"
// @Success 201 {object} resdto.QueueResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /queues [post]
func (h *QueueHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.queueCommands.Create(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		switch {
		case isDomainValidationErr(err):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	h.respondQueue(c, http.StatusCreated, view)
}

// @Summary List own queues
// @Description List queues created by the authenticated admin
// @Tags queues
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.QueueResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /queues [get]
func (h *QueueHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.queueQueries.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	h.respondQueues(c, views)
}

// @Summary List joined queues
// @Description List queues the authenticated user participates in
// @Tags queues
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.QueueResponse
// @Failure 401 {object} map[string]string
// @Router /queues/user [get]
func (h *QueueHandler) ListJoined(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.queueQueries.ListByParticipant(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	h.respondQueues(c, views)
}

// @Summary Look up a queue by join code
// @Description Resolve a short join code to the full queue snapshot
// @Tags queues
// @Produce json
// @Param code path string true "Join code"
// @Success 200 {object} resdto.QueueResponse
// @Failure 404 {object} map[string]string
// @Router /queues/{code} [get]
func (h *QueueHandler) GetByCode(c *gin.Context) {
	// the shared :id segment carries a join code on this route
	code := c.Param("id")

	view, err := h.queueQueries.GetByCode(c.Request.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrQueueNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Queue not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	h.respondQueue(c, http.StatusOK, view)
}

// @Summary Join a queue
// @Description Take the next number in the queue
// @Tags queues
// @Produce json
// @Security BearerAuth
// @Param id path string true "Queue ID"
// @Success 200 {object} resdto.QueueResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /queues/{id}/join [post]
func (h *QueueHandler) Join(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	queueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid queue ID",
		})
		return
	}

	view, err := h.queueCommands.Join(c.Request.Context(), queueID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAlreadyJoined):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Already in this queue",
			})
		case errors.Is(err, commands.ErrQueueNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Queue not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	h.respondQueue(c, http.StatusOK, view)
}

// @Summary Leave a queue
// @Description Give up the held number; later numbers are unchanged
// @Tags queues
// @Produce json
// @Security BearerAuth
// @Param id path string true "Queue ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /queues/{id}/leave [post]
func (h *QueueHandler) Leave(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	queueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid queue ID",
		})
		return
	}

	if err := h.queueCommands.Leave(c.Request.Context(), queueID, userID); err != nil {
		switch {
		case errors.Is(err, commands.ErrNotInQueue):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Not in this queue",
			})
		case errors.Is(err, commands.ErrQueueNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Queue not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Left the queue"})
}

// @Summary Update a participant's status
// @Description Move a participant between waiting, processing and completed
// @Tags queues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Queue ID"
// @Param userId path string true "Participant user ID"
// @Param request body reqdto.UpdateParticipantStatusRequest true "Status request"
// @Success 200 {object} resdto.QueueResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /queues/{id}/participant/{userId} [patch]
func (h *QueueHandler) UpdateParticipantStatus(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	queueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid queue ID",
		})
		return
	}
	targetUserID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID",
		})
		return
	}

	var req reqdto.UpdateParticipantStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.queueCommands.UpdateParticipantStatus(c.Request.Context(), callerID, queueID, targetUserID, req.Status)
	if err != nil {
		switch {
		case isDomainValidationErr(err):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status",
			})
		case errors.Is(err, commands.ErrNotQueueOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only the queue owner can update participants",
			})
		case errors.Is(err, commands.ErrQueueNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Queue not found",
			})
		case errors.Is(err, commands.ErrParticipantNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Participant not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	h.respondQueue(c, http.StatusOK, view)
}

func (h *QueueHandler) respondQueue(c *gin.Context, status int, view *queries.QueueView) {
	resp, err := resdto.FromQueueView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(status, resp)
}

func (h *QueueHandler) respondQueues(c *gin.Context, views []*queries.QueueView) {
	resps, err := resdto.FromQueueViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resps)
}
