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

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetUserByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetUserByIDRow), args.Error(1)
}

func (m *MockUserReadQueries) GetUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.GetUserByEmailRow, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.GetUserByEmailRow), args.Error(1)
}

func TestUserFindByID(t *testing.T) {
	userID := uuid.New()

	t.Run("maps the row to a view", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, userID).
			Return(sqlc.GetUserByIDRow{
				ID:        userID,
				Name:      "Test User",
				Email:     "test@example.com",
				Role:      "user",
				CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
			}, nil)

		store := NewUserReadStore(mockQueries, nil)
		view, err := store.FindByID(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, userID, view.ID)
		assert.Equal(t, "test@example.com", view.Email)
		assert.Equal(t, "user", view.Role)
	})

	t.Run("maps a missing row to not found", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, userID).
			Return(sqlc.GetUserByIDRow{}, pgx.ErrNoRows)

		store := NewUserReadStore(mockQueries, nil)
		view, err := store.FindByID(context.Background(), userID)

		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestUserFindByEmail(t *testing.T) {
	t.Run("returns the credential view with the hash", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByEmail", mock.Anything, mock.Anything, "test@example.com").
			Return(sqlc.GetUserByEmailRow{
				ID:           uuid.New(),
				Name:         "Test User",
				Email:        "test@example.com",
				PasswordHash: "hashed_password",
				Role:         "admin",
				CreatedAt:    pgtype.Timestamptz{Time: time.Now(), Valid: true},
			}, nil)

		store := NewUserReadStore(mockQueries, nil)
		cred, err := store.FindByEmail(context.Background(), "test@example.com")

		require.NoError(t, err)
		assert.Equal(t, "hashed_password", cred.PasswordHash)
		assert.Equal(t, "admin", cred.User.Role)
	})

	t.Run("maps a missing row to not found", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByEmail", mock.Anything, mock.Anything, "missing@example.com").
			Return(sqlc.GetUserByEmailRow{}, pgx.ErrNoRows)

		store := NewUserReadStore(mockQueries, nil)
		_, err := store.FindByEmail(context.Background(), "missing@example.com")

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("wraps other database errors", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByEmail", mock.Anything, mock.Anything, "test@example.com").
			Return(sqlc.GetUserByEmailRow{}, assert.AnError)

		store := NewUserReadStore(mockQueries, nil)
		_, err := store.FindByEmail(context.Background(), "test@example.com")

		assert.Error(t, err)
		assert.False(t, infra.IsKind(err, infra.KindNotFound))
	})
}
