package readstore

import (
	"context"

	"github.com/google/uuid"

	"queueline/internal/infra"
	sqlc "queueline/internal/infra/sqlc/generated"
	"queueline/internal/pkg/pgconv"
	"queueline/internal/usecase/queries"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetUserByIDRow, error)
	GetUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.GetUserByEmailRow, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(q UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{queries: q, db: db}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := s.queries.GetUserByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapDBErr("failed to find user by id", err)
	}
	return &queries.UserView{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Role:      row.Role,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.CredentialView, error) {
	row, err := s.queries.GetUserByEmail(ctx, s.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapDBErr("failed to find user by email", err)
	}
	return &queries.CredentialView{
		User: queries.UserView{
			ID:        row.ID,
			Name:      row.Name,
			Email:     row.Email,
			Role:      row.Role,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		},
		PasswordHash: row.PasswordHash,
	}, nil
}
