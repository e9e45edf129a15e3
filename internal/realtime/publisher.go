package realtime

import (
	"github.com/google/uuid"

	"queueline/internal/usecase/queries"
)

// SnapshotBroadcaster bridges the command layer to the hub: every queue
// mutation ends with the fresh snapshot broadcast on the queue's topic.
type SnapshotBroadcaster struct {
	hub *Hub
}

func NewSnapshotBroadcaster(hub *Hub) *SnapshotBroadcaster {
	return &SnapshotBroadcaster{hub: hub}
}

func (b *SnapshotBroadcaster) PublishQueueUpdated(queueID uuid.UUID, snapshot *queries.QueueView) {
	b.hub.Publish(TopicForQueue(queueID), EventQueueUpdated, snapshot)
}
