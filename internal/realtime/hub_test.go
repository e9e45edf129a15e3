//go:build unit

package realtime

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"queueline/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(sendBuffer int) *Hub {
	cfg := config.RealtimeConfig{SendBuffer: sendBuffer}
	return NewHub(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(hub *Hub) *Client {
	return NewClient(hub, nil, hub.logger)
}

func TestTopicForQueue(t *testing.T) {
	id := uuid.MustParse("3f6f74d4-9c3a-4a5e-8f43-1f0d7cb1a001")
	assert.Equal(t, "queue_3f6f74d4-9c3a-4a5e-8f43-1f0d7cb1a001", TopicForQueue(id))
}

func TestHubPublishDeliversEnvelope(t *testing.T) {
	hub := newTestHub(4)
	client := newTestClient(hub)
	topic := TopicForQueue(uuid.New())
	hub.subscribe(topic, client)

	hub.Publish(topic, EventQueueUpdated, map[string]string{"name": "Bakery"})

	select {
	case msg := <-client.send:
		var env Envelope
		require.NoError(t, json.Unmarshal(msg, &env))
		assert.Equal(t, EventQueueUpdated, env.Event)
		assert.JSONEq(t, `{"name":"Bakery"}`, string(env.Data))
	default:
		t.Fatal("expected a message on the client send channel")
	}
}

func TestHubPublishSkipsOtherTopics(t *testing.T) {
	hub := newTestHub(4)
	client := newTestClient(hub)
	hub.subscribe(TopicForQueue(uuid.New()), client)

	hub.Publish(TopicForQueue(uuid.New()), EventQueueUpdated, "x")

	assert.Empty(t, client.send)
}

func TestHubPublishDropsWhenBufferFull(t *testing.T) {
	hub := newTestHub(1)
	client := newTestClient(hub)
	topic := TopicForQueue(uuid.New())
	hub.subscribe(topic, client)

	hub.Publish(topic, EventQueueUpdated, "first")
	hub.Publish(topic, EventQueueUpdated, "second")

	// first message is kept, second is dropped rather than blocking
	require.Len(t, client.send, 1)
	var env Envelope
	require.NoError(t, json.Unmarshal(<-client.send, &env))
	assert.JSONEq(t, `"first"`, string(env.Data))
}

func TestHubDetachRemovesAllSubscriptions(t *testing.T) {
	hub := newTestHub(4)
	client := newTestClient(hub)
	topicA := TopicForQueue(uuid.New())
	topicB := TopicForQueue(uuid.New())

	client.topics[topicA] = struct{}{}
	client.topics[topicB] = struct{}{}
	hub.subscribe(topicA, client)
	hub.subscribe(topicB, client)
	require.Equal(t, 1, hub.SubscriberCount(topicA))

	hub.detach(client)

	assert.Zero(t, hub.SubscriberCount(topicA))
	assert.Zero(t, hub.SubscriberCount(topicB))
	assert.Empty(t, hub.topics, "empty topics should be pruned")
}

func TestClientHandleMessageSubscribesOnce(t *testing.T) {
	hub := newTestHub(4)
	client := newTestClient(hub)
	queueID := uuid.New()

	frame, _ := json.Marshal(inboundFrame{Event: EventJoinQueue, QueueID: queueID})
	client.handleMessage(frame)
	client.handleMessage(frame)

	assert.Equal(t, 1, hub.SubscriberCount(TopicForQueue(queueID)))
}

func TestClientHandleMessageIgnoresJunk(t *testing.T) {
	hub := newTestHub(4)
	client := newTestClient(hub)

	client.handleMessage([]byte("not json"))
	client.handleMessage([]byte(`{"event":"joinQueue"}`))
	client.handleMessage([]byte(`{"event":"unknown","queueId":"` + uuid.New().String() + `"}`))

	assert.Empty(t, hub.topics)
	assert.Empty(t, client.topics)
}

func TestSnapshotBroadcasterTargetsQueueTopic(t *testing.T) {
	hub := newTestHub(4)
	client := newTestClient(hub)
	queueID := uuid.New()
	hub.subscribe(TopicForQueue(queueID), client)

	NewSnapshotBroadcaster(hub).PublishQueueUpdated(queueID, nil)

	require.Len(t, client.send, 1)
	var env Envelope
	require.NoError(t, json.Unmarshal(<-client.send, &env))
	assert.Equal(t, EventQueueUpdated, env.Event)
}
