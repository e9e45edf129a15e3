//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"queueline/internal/domain/queue"
	"queueline/internal/infra"
	sqlc "queueline/internal/infra/sqlc/generated"
	"queueline/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockQueueWriteQueries struct {
	mock.Mock
}

func (m *MockQueueWriteQueries) CreateQueue(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateQueueParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockQueueWriteQueries) GetQueueByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetQueueByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetQueueByIDRow), args.Error(1)
}

func (m *MockQueueWriteQueries) IncrementQueueNumber(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.IncrementQueueNumberRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.IncrementQueueNumberRow), args.Error(1)
}

func (m *MockQueueWriteQueries) GetParticipant(ctx context.Context, db sqlc.DBTX, arg sqlc.GetParticipantParams) (sqlc.GetParticipantRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.GetParticipantRow), args.Error(1)
}

func (m *MockQueueWriteQueries) CountWaitingParticipants(ctx context.Context, db sqlc.DBTX, queueID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, queueID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueueWriteQueries) InsertParticipant(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertParticipantParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockQueueWriteQueries) DeleteParticipant(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteParticipantParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueueWriteQueries) UpdateParticipantStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateParticipantStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueueWriteQueries) RecomputeWaitingEstimates(ctx context.Context, db sqlc.DBTX, arg sqlc.RecomputeWaitingEstimatesParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockQueueWriteQueries) TouchQueue(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func TestNextNumber(t *testing.T) {
	queueID := uuid.New()

	t.Run("returns the incremented number with the service time", func(t *testing.T) {
		mockQueries := new(MockQueueWriteQueries)
		mockQueries.On("IncrementQueueNumber", mock.Anything, mock.Anything, queueID).
			Return(sqlc.IncrementQueueNumberRow{CurrentNumber: 4, ServiceTime: 10}, nil)

		repo := NewQueueRepository(mockQueries)
		number, serviceTime, err := repo.NextNumber(context.Background(), nil, queueID)

		require.NoError(t, err)
		assert.EqualValues(t, 4, number)
		assert.EqualValues(t, 10, serviceTime.Minutes())
	})

	t.Run("maps a missing queue to not found", func(t *testing.T) {
		mockQueries := new(MockQueueWriteQueries)
		mockQueries.On("IncrementQueueNumber", mock.Anything, mock.Anything, queueID).
			Return(sqlc.IncrementQueueNumberRow{}, pgx.ErrNoRows)

		repo := NewQueueRepository(mockQueries)
		_, _, err := repo.NextNumber(context.Background(), nil, queueID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestAddParticipant(t *testing.T) {
	params := commands.AddParticipantParams{
		QueueID:  uuid.New(),
		UserID:   uuid.New(),
		Status:   queue.StatusWaiting,
		Number:   1,
		JoinedAt: time.Now(),
	}

	t.Run("passes through the insert", func(t *testing.T) {
		mockQueries := new(MockQueueWriteQueries)
		mockQueries.On("InsertParticipant", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.InsertParticipantParams) bool {
			return arg.QueueID == params.QueueID && arg.UserID == params.UserID &&
				arg.Status == "waiting" && arg.Number == 1 && !arg.EstimatedStartTime.Valid
		})).Return(nil)

		repo := NewQueueRepository(mockQueries)
		err := repo.AddParticipant(context.Background(), nil, params)

		require.NoError(t, err)
	})

	t.Run("classifies a unique violation as duplicate key", func(t *testing.T) {
		mockQueries := new(MockQueueWriteQueries)
		mockQueries.On("InsertParticipant", mock.Anything, mock.Anything, mock.Anything).
			Return(&pgconn.PgError{Code: "23505"})

		repo := NewQueueRepository(mockQueries)
		err := repo.AddParticipant(context.Background(), nil, params)

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("classifies a foreign key violation", func(t *testing.T) {
		mockQueries := new(MockQueueWriteQueries)
		mockQueries.On("InsertParticipant", mock.Anything, mock.Anything, mock.Anything).
			Return(&pgconn.PgError{Code: "23503"})

		repo := NewQueueRepository(mockQueries)
		err := repo.AddParticipant(context.Background(), nil, params)

		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestRemoveParticipant(t *testing.T) {
	queueID := uuid.New()
	userID := uuid.New()

	t.Run("reports whether a row was deleted", func(t *testing.T) {
		mockQueries := new(MockQueueWriteQueries)
		mockQueries.On("DeleteParticipant", mock.Anything, mock.Anything,
			sqlc.DeleteParticipantParams{QueueID: queueID, UserID: userID}).
			Return(int64(1), nil)

		repo := NewQueueRepository(mockQueries)
		removed, err := repo.RemoveParticipant(context.Background(), nil, queueID, userID)

		require.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("zero rows means the user was not in the queue", func(t *testing.T) {
		mockQueries := new(MockQueueWriteQueries)
		mockQueries.On("DeleteParticipant", mock.Anything, mock.Anything, mock.Anything).
			Return(int64(0), nil)

		repo := NewQueueRepository(mockQueries)
		removed, err := repo.RemoveParticipant(context.Background(), nil, queueID, userID)

		require.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestSetParticipantStatus(t *testing.T) {
	queueID := uuid.New()
	userID := uuid.New()

	t.Run("reports whether a row was updated", func(t *testing.T) {
		mockQueries := new(MockQueueWriteQueries)
		mockQueries.On("UpdateParticipantStatus", mock.Anything, mock.Anything,
			sqlc.UpdateParticipantStatusParams{Status: "processing", QueueID: queueID, UserID: userID}).
			Return(int64(1), nil)

		repo := NewQueueRepository(mockQueries)
		updated, err := repo.SetParticipantStatus(context.Background(), nil, queueID, userID, queue.StatusProcessing)

		require.NoError(t, err)
		assert.True(t, updated)
	})

	t.Run("zero rows means no such participant", func(t *testing.T) {
		mockQueries := new(MockQueueWriteQueries)
		mockQueries.On("UpdateParticipantStatus", mock.Anything, mock.Anything, mock.Anything).
			Return(int64(0), nil)

		repo := NewQueueRepository(mockQueries)
		updated, err := repo.SetParticipantStatus(context.Background(), nil, queueID, userID, queue.StatusCompleted)

		require.NoError(t, err)
		assert.False(t, updated)
	})
}

func TestExists(t *testing.T) {
	queueID := uuid.New()

	t.Run("true when the queue row is present", func(t *testing.T) {
		mockQueries := new(MockQueueWriteQueries)
		mockQueries.On("GetQueueByID", mock.Anything, mock.Anything, queueID).
			Return(sqlc.GetQueueByIDRow{ID: queueID}, nil)

		repo := NewQueueRepository(mockQueries)
		ok, err := repo.Exists(context.Background(), nil, queueID)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("false without error when missing", func(t *testing.T) {
		mockQueries := new(MockQueueWriteQueries)
		mockQueries.On("GetQueueByID", mock.Anything, mock.Anything, queueID).
			Return(sqlc.GetQueueByIDRow{}, pgx.ErrNoRows)

		repo := NewQueueRepository(mockQueries)
		ok, err := repo.Exists(context.Background(), nil, queueID)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}
