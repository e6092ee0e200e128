package usecase

import (
	"errors"

	"staybook/internal/pkg/jwt"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenValidator resolves a bearer token into the session identity. The
// auth middleware is its only caller.
type TokenValidator interface {
	Validate(token string) (Session, error)
}

type tokenValidatorImpl struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtSvc *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwt: jwtSvc}
}

func (v *tokenValidatorImpl) Validate(token string) (Session, error) {
	claims, err := v.jwt.ValidateToken(token)
	if err != nil {
		return Session{}, ErrInvalidToken
	}
	return Session{
		UserID:        claims.UserID,
		Username:      claims.Username,
		Authenticated: true,
	}, nil
}
