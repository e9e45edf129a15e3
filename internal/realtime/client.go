package realtime

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// EventJoinQueue is sent by clients to subscribe to a queue's updates.
	EventJoinQueue = "joinQueue"
	// EventQueueUpdated carries a full queue snapshot to subscribers.
	EventQueueUpdated = "queueUpdated"

	maxInboundBytes = 512
)

// inboundFrame is what clients send: the event name with its arguments
// inlined rather than nested under data.
type inboundFrame struct {
	Event   string    `json:"event"`
	QueueID uuid.UUID `json:"queueId"`
}

// Client is one websocket connection. Reads and writes each run on their
// own goroutine; the send channel is the only way to reach the socket.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	topics map[string]struct{}
	logger *slog.Logger
}

func NewClient(hub *Hub, conn *websocket.Conn, logger *slog.Logger) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, hub.cfg.SendBuffer),
		topics: make(map[string]struct{}),
		logger: logger,
	}
}

// Run services the connection until the peer goes away, then detaches the
// client from every topic it joined.
func (c *Client) Run() {
	done := make(chan struct{})
	go c.writePump(done)
	c.readPump()
	close(done)
	c.hub.detach(c)
}

func (c *Client) readPump() {
	defer c.conn.Close()

	c.conn.SetReadLimit(maxInboundBytes)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.hub.cfg.PongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.hub.cfg.PongTimeout))
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("websocket closed unexpectedly", "error", err)
			}
			return
		}
		c.handleMessage(msg)
	}
}

func (c *Client) handleMessage(msg []byte) {
	var frame inboundFrame
	if err := json.Unmarshal(msg, &frame); err != nil {
		c.logger.Warn("ignoring malformed websocket message", "error", err)
		return
	}

	switch frame.Event {
	case EventJoinQueue:
		if frame.QueueID == uuid.Nil {
			c.logger.Warn("ignoring joinQueue with invalid queue id")
			return
		}
		topic := TopicForQueue(frame.QueueID)
		if _, ok := c.topics[topic]; ok {
			return
		}
		c.topics[topic] = struct{}{}
		c.hub.subscribe(topic, c)
	default:
		c.logger.Warn("ignoring unknown websocket event", "event", frame.Event)
	}
}

func (c *Client) writePump(done <-chan struct{}) {
	pingInterval := c.hub.cfg.PongTimeout * 9 / 10
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
