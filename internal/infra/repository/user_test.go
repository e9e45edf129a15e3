//go:build unit

package repository

import (
	"context"
	"testing"

	"queueline/internal/infra"
	sqlc "queueline/internal/infra/sqlc/generated"
	"queueline/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func TestUserCreate(t *testing.T) {
	entity, err := builder.NewUserBuilder().WithRole("admin").BuildDomain()
	require.NoError(t, err)

	t.Run("maps the entity to the insert params", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.CreateUserParams) bool {
			return arg.ID == entity.ID() &&
				arg.Email == entity.Email().Value() &&
				arg.PasswordHash == entity.PasswordHash() &&
				arg.Role == "admin"
		})).Return(entity.ID(), nil)

		repo := NewUserRepository(mockQueries)
		id, err := repo.Create(context.Background(), nil, entity)

		require.NoError(t, err)
		assert.Equal(t, entity.ID(), id)
	})

	t.Run("classifies a duplicate email", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("CreateUser", mock.Anything, mock.Anything, mock.Anything).
			Return(uuid.Nil, &pgconn.PgError{Code: "23505"})

		repo := NewUserRepository(mockQueries)
		_, err := repo.Create(context.Background(), nil, entity)

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}
