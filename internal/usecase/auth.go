package usecase

import (
	"context"
	"errors"
	"time"

	"staybook/internal/infra"
	"staybook/internal/infra/gateway"
	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrAuthUpstream       = errors.New("authentication service unavailable")
)

// IdentityGateway is the remote account collaborator. Credentials are
// forwarded as-is; the remote side owns verification and storage.
type IdentityGateway interface {
	Login(ctx context.Context, username, password string) (*gateway.RemoteUser, error)
	Register(ctx context.Context, username, password, email, fullName string) error
}

// AuthResult carries the minted token and the identity it represents.
type AuthResult struct {
	Token     string
	ExpiresIn time.Duration
	UserID    int64
	Username  string
}

type RegisterParams struct {
	Username string
	Password string
	Email    string
	FullName string
}

type AuthUseCase interface {
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	Register(ctx context.Context, params RegisterParams) error
}

type authUseCaseImpl struct {
	gateway IdentityGateway
	jwt     *jwt.Service
}

func NewAuthUseCase(gw IdentityGateway, jwtSvc *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{gateway: gw, jwt: jwtSvc}
}

// Login verifies credentials against the remote API and mints a local
// session token for the identity it confirms.
func (u *authUseCaseImpl) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := u.gateway.Login(ctx, username, password)
	if err != nil {
		if infra.IsKind(err, infra.KindUnauthorized) || infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthUpstream)
	}

	token, err := u.jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthUpstream)
	}

	return &AuthResult{
		Token:     token,
		ExpiresIn: u.jwt.TokenDuration(),
		UserID:    user.ID,
		Username:  user.Username,
	}, nil
}

func (u *authUseCaseImpl) Register(ctx context.Context, params RegisterParams) error {
	err := u.gateway.Register(ctx, params.Username, params.Password, params.Email, params.FullName)
	if err != nil {
		if infra.IsKind(err, infra.KindBadRequest) {
			return ErrUserAlreadyExists
		}
		return errs.Mark(err, ErrAuthUpstream)
	}
	return nil
}
