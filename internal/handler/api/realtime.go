package api

import (
	"log/slog"
	"net/http"

	"queueline/internal/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewRealtimeHandler(hub *realtime.Hub, logger *slog.Logger) *RealtimeHandler {
	return &RealtimeHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// origins are enforced by the CORS layer on the REST surface;
			// snapshots carry no secrets beyond what GET /queues/:code serves
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// @Summary Subscribe to queue updates
// @Description Upgrade to a websocket; send {"event":"joinQueue","queueId":"..."} to subscribe
// @Tags realtime
// @Router /ws [get]
func (h *RealtimeHandler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := realtime.NewClient(h.hub, conn, h.logger)
	go client.Run()
}
