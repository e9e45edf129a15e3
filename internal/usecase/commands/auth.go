package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"queueline/internal/domain/user"
	"queueline/internal/infra"
	sqlc "queueline/internal/infra/sqlc/generated"
	"queueline/internal/pkg/errs"
	"queueline/internal/pkg/jwt"
	"queueline/internal/pkg/password"
	"queueline/internal/usecase/queries"
	"queueline/internal/usecase/shared"
)

var (
	ErrEmailAlreadyTaken  = errs.New("email already taken")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("failed to generate token")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthResult bundles a signed token with the authenticated user's view.
type AuthResult struct {
	Token string
	User  *queries.UserView
}

type AuthCommands interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
}

type authCommands struct {
	db       *pgxpool.Pool
	users    UserRepository
	reader   queries.UserReadStore
	tokenSvc *jwt.Service
}

func NewAuthCommands(db *pgxpool.Pool, users UserRepository, reader queries.UserReadStore, tokenSvc *jwt.Service) AuthCommands {
	return &authCommands{db: db, users: users, reader: reader, tokenSvc: tokenSvc}
}

func (c *authCommands) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	role := user.RoleUser
	if input.Role != "" {
		parsed, err := user.NewRole(input.Role)
		if err != nil {
			return nil, err
		}
		role = parsed
	}

	name, err := user.NewName(input.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewPassword(input.Password)
	if err != nil {
		return nil, err
	}
	hash, err := password.Hash(pw.Value())
	if err != nil {
		return nil, err
	}

	u := user.NewUser(name, email, hash, role)
	userID, err := shared.RunInTx(ctx, c.db, func(tx sqlc.DBTX) (uuid.UUID, error) {
		return c.users.Create(ctx, tx, u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailAlreadyTaken)
		}
		return nil, err
	}

	view, err := c.reader.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	token, err := c.tokenSvc.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{Token: token, User: view}, nil
}

func (c *authCommands) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	cred, err := c.reader.FindByEmail(ctx, input.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, err
	}

	if err := password.Compare(cred.PasswordHash, input.Password); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	role, err := user.NewRole(cred.User.Role)
	if err != nil {
		return nil, err
	}
	token, err := c.tokenSvc.GenerateToken(cred.User.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	userView := cred.User
	return &AuthResult{Token: token, User: &userView}, nil
}
