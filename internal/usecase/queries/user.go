package queries

import (
	"context"

	"github.com/google/uuid"

	"queueline/internal/infra"
	"queueline/internal/pkg/errs"
)

var ErrUserNotFound = errs.New("user not found")

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

// CredentialView carries the stored password hash alongside the public user
// attributes. It never leaves the usecase layer.
type CredentialView struct {
	User         UserView
	PasswordHash string
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindByEmail(ctx context.Context, email string) (*CredentialView, error)
}

type userQueries struct {
	reader UserReadStore
}

func NewUserQueries(reader UserReadStore) UserQueries {
	return &userQueries{reader: reader}
}

func (q *userQueries) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	view, err := q.reader.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, err
	}
	return view, nil
}
