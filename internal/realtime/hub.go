package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"queueline/internal/pkg/config"
)

// TopicForQueue names the broadcast channel for one queue.
func TopicForQueue(queueID uuid.UUID) string {
	return "queue_" + queueID.String()
}

// Envelope is the wire frame for every message crossing a websocket, in
// both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Hub tracks which clients are subscribed to which topics and fans
// published events out to them. Delivery is best-effort: a client whose
// send buffer is full misses the message and catches up on the next one,
// since every event carries the full queue snapshot.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[*Client]struct{}
	cfg    config.RealtimeConfig
	logger *slog.Logger
}

func NewHub(cfg config.RealtimeConfig, logger *slog.Logger) *Hub {
	return &Hub{
		topics: make(map[string]map[*Client]struct{}),
		cfg:    cfg,
		logger: logger,
	}
}

// Publish marshals the event once and hands it to every subscriber of the
// topic without blocking.
func (h *Hub) Publish(topic string, event string, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		h.logger.Error("failed to marshal realtime event", "topic", topic, "event", event, "error", err)
		return
	}
	msg, err := json.Marshal(Envelope{Event: event, Data: raw})
	if err != nil {
		h.logger.Error("failed to marshal realtime envelope", "topic", topic, "event", event, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.topics[topic] {
		select {
		case client.send <- msg:
		default:
			h.logger.Warn("dropping realtime message for slow client", "topic", topic, "event", event)
		}
	}
}

// SubscriberCount reports how many clients are currently on a topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

func (h *Hub) subscribe(topic string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.topics[topic]
	if !ok {
		clients = make(map[*Client]struct{})
		h.topics[topic] = clients
	}
	clients[c] = struct{}{}
}

func (h *Hub) detach(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for topic := range c.topics {
		clients := h.topics[topic]
		delete(clients, c)
		if len(clients) == 0 {
			delete(h.topics, topic)
		}
	}
}
