//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"queueline/internal/infra"
	sqlc "queueline/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockQueueReadQueries struct {
	mock.Mock
}

func (m *MockQueueReadQueries) GetQueueByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetQueueByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetQueueByIDRow), args.Error(1)
}

func (m *MockQueueReadQueries) GetQueueByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.GetQueueByCodeRow, error) {
	args := m.Called(ctx, db, code)
	return args.Get(0).(sqlc.GetQueueByCodeRow), args.Error(1)
}

func (m *MockQueueReadQueries) ListQueuesByOwner(ctx context.Context, db sqlc.DBTX, createdBy uuid.UUID) ([]sqlc.ListQueuesByOwnerRow, error) {
	args := m.Called(ctx, db, createdBy)
	return args.Get(0).([]sqlc.ListQueuesByOwnerRow), args.Error(1)
}

func (m *MockQueueReadQueries) ListQueuesByParticipant(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListQueuesByParticipantRow, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).([]sqlc.ListQueuesByParticipantRow), args.Error(1)
}

func (m *MockQueueReadQueries) ListQueueParticipants(ctx context.Context, db sqlc.DBTX, queueID uuid.UUID) ([]sqlc.ListQueueParticipantsRow, error) {
	args := m.Called(ctx, db, queueID)
	return args.Get(0).([]sqlc.ListQueueParticipantsRow), args.Error(1)
}

func testQueueRow(id uuid.UUID) sqlc.GetQueueByIDRow {
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	return sqlc.GetQueueByIDRow{
		ID:            id,
		Code:          "abc123xyz",
		Name:          "Test Queue",
		Description:   pgtype.Text{String: "walk-ins", Valid: true},
		ServiceTime:   5,
		CreatedBy:     uuid.New(),
		Active:        true,
		CurrentNumber: 3,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func participantRow(userID uuid.UUID, status string, number int32) sqlc.ListQueueParticipantsRow {
	return sqlc.ListQueueParticipantsRow{
		UserID:    userID,
		UserName:  "Participant",
		UserEmail: "participant@example.com",
		Status:    status,
		Number:    number,
		JoinedAt:  pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}

func TestFindByID(t *testing.T) {
	queueID := uuid.New()

	t.Run("assembles head and participants with positions", func(t *testing.T) {
		mockQueries := new(MockQueueReadQueries)
		mockQueries.On("GetQueueByID", mock.Anything, mock.Anything, queueID).
			Return(testQueueRow(queueID), nil)
		mockQueries.On("ListQueueParticipants", mock.Anything, mock.Anything, queueID).
			Return([]sqlc.ListQueueParticipantsRow{
				participantRow(uuid.New(), "completed", 1),
				participantRow(uuid.New(), "processing", 2),
				participantRow(uuid.New(), "waiting", 3),
			}, nil)

		store := NewQueueReadStore(mockQueries, nil)
		view, err := store.FindByID(context.Background(), queueID)

		require.NoError(t, err)
		require.Len(t, view.Participants, 3)
		assert.Equal(t, queueID, view.ID)
		assert.Equal(t, "abc123xyz", view.Code)
		assert.Equal(t, "walk-ins", *view.Description)

		// completed holds no place; active participants count those at or
		// ahead of their own number
		assert.Equal(t, 0, view.Participants[0].Position)
		assert.Equal(t, 1, view.Participants[1].Position)
		assert.Equal(t, 2, view.Participants[2].Position)
	})

	t.Run("maps missing queue to not found", func(t *testing.T) {
		mockQueries := new(MockQueueReadQueries)
		mockQueries.On("GetQueueByID", mock.Anything, mock.Anything, queueID).
			Return(sqlc.GetQueueByIDRow{}, pgx.ErrNoRows)

		store := NewQueueReadStore(mockQueries, nil)
		view, err := store.FindByID(context.Background(), queueID)

		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("wraps other database errors", func(t *testing.T) {
		mockQueries := new(MockQueueReadQueries)
		mockQueries.On("GetQueueByID", mock.Anything, mock.Anything, queueID).
			Return(sqlc.GetQueueByIDRow{}, assert.AnError)

		store := NewQueueReadStore(mockQueries, nil)
		_, err := store.FindByID(context.Background(), queueID)

		assert.Error(t, err)
		assert.False(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestFindByCode(t *testing.T) {
	queueID := uuid.New()

	t.Run("resolves a join code", func(t *testing.T) {
		mockQueries := new(MockQueueReadQueries)
		mockQueries.On("GetQueueByCode", mock.Anything, mock.Anything, "abc123xyz").
			Return(sqlc.GetQueueByCodeRow(testQueueRow(queueID)), nil)
		mockQueries.On("ListQueueParticipants", mock.Anything, mock.Anything, queueID).
			Return([]sqlc.ListQueueParticipantsRow{}, nil)

		store := NewQueueReadStore(mockQueries, nil)
		view, err := store.FindByCode(context.Background(), "abc123xyz")

		require.NoError(t, err)
		assert.Equal(t, queueID, view.ID)
		assert.Empty(t, view.Participants)
	})

	t.Run("maps unknown code to not found", func(t *testing.T) {
		mockQueries := new(MockQueueReadQueries)
		mockQueries.On("GetQueueByCode", mock.Anything, mock.Anything, "missing").
			Return(sqlc.GetQueueByCodeRow{}, pgx.ErrNoRows)

		store := NewQueueReadStore(mockQueries, nil)
		_, err := store.FindByCode(context.Background(), "missing")

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestListByOwner(t *testing.T) {
	ownerID := uuid.New()

	t.Run("assembles every owned queue", func(t *testing.T) {
		first := testQueueRow(uuid.New())
		second := testQueueRow(uuid.New())

		mockQueries := new(MockQueueReadQueries)
		mockQueries.On("ListQueuesByOwner", mock.Anything, mock.Anything, ownerID).
			Return([]sqlc.ListQueuesByOwnerRow{
				sqlc.ListQueuesByOwnerRow(first),
				sqlc.ListQueuesByOwnerRow(second),
			}, nil)
		mockQueries.On("ListQueueParticipants", mock.Anything, mock.Anything, first.ID).
			Return([]sqlc.ListQueueParticipantsRow{participantRow(uuid.New(), "waiting", 1)}, nil)
		mockQueries.On("ListQueueParticipants", mock.Anything, mock.Anything, second.ID).
			Return([]sqlc.ListQueueParticipantsRow{}, nil)

		store := NewQueueReadStore(mockQueries, nil)
		views, err := store.ListByOwner(context.Background(), ownerID)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Len(t, views[0].Participants, 1)
		assert.Empty(t, views[1].Participants)
	})

	t.Run("no queues yields an empty slice", func(t *testing.T) {
		mockQueries := new(MockQueueReadQueries)
		mockQueries.On("ListQueuesByOwner", mock.Anything, mock.Anything, ownerID).
			Return([]sqlc.ListQueuesByOwnerRow{}, nil)

		store := NewQueueReadStore(mockQueries, nil)
		views, err := store.ListByOwner(context.Background(), ownerID)

		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})
}

func TestListByParticipant(t *testing.T) {
	userID := uuid.New()

	t.Run("assembles joined queues", func(t *testing.T) {
		row := testQueueRow(uuid.New())

		mockQueries := new(MockQueueReadQueries)
		mockQueries.On("ListQueuesByParticipant", mock.Anything, mock.Anything, userID).
			Return([]sqlc.ListQueuesByParticipantRow{sqlc.ListQueuesByParticipantRow(row)}, nil)
		mockQueries.On("ListQueueParticipants", mock.Anything, mock.Anything, row.ID).
			Return([]sqlc.ListQueueParticipantsRow{participantRow(userID, "waiting", 1)}, nil)

		store := NewQueueReadStore(mockQueries, nil)
		views, err := store.ListByParticipant(context.Background(), userID)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, userID, views[0].Participants[0].UserID)
	})
}
