//go:build unit

package queue_test

import (
	"testing"
	"time"

	"queueline/internal/domain/queue"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestPosition(t *testing.T) {
	standings := []queue.Standing{
		{Number: 1, Status: queue.StatusProcessing},
		{Number: 3, Status: queue.StatusWaiting},
		{Number: 4, Status: queue.StatusCompleted},
		{Number: 5, Status: queue.StatusWaiting},
	}

	tests := []struct {
		name   string
		number int32
		want   int
	}{
		{"earliest active participant is position 1", 1, 1},
		{"waiting behind one active", 3, 2},
		{"completed participant has no position", 4, 0},
		{"completed participants do not count toward later positions", 5, 3},
		{"number not present", 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, queue.Position(standings, tt.number))
		})
	}
}

// After B(2) leaves, A(1) and C(3) remain; A is position 1, C is position 2.
func TestPosition_AfterLeaveKeepsNumbers(t *testing.T) {
	standings := []queue.Standing{
		{Number: 1, Status: queue.StatusWaiting},
		{Number: 3, Status: queue.StatusWaiting},
	}

	got := []int{
		queue.Position(standings, 1),
		queue.Position(standings, 3),
	}
	if diff := cmp.Diff([]int{1, 2}, got); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name             string
		position         int
		participantCount int
		want             float64
	}{
		{"not in queue", 0, 10, 0},
		{"alone in queue", 1, 1, 100},
		{"front of a pair", 1, 2, 100},
		{"back of a pair", 2, 2, 50},
		{"deep in a long line clamps at 5", 100, 100, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, queue.Progress(tt.position, tt.participantCount), 0.001)
		})
	}
}

func TestEstimatedWait(t *testing.T) {
	st, err := queue.NewServiceTime(5)
	assert.NoError(t, err)

	assert.Equal(t, time.Duration(0), queue.EstimatedWait(0, st))
	assert.Equal(t, 15*time.Minute, queue.EstimatedWait(3, st))
}
