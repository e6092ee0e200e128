//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"staybook/internal/infra"
	"staybook/internal/infra/gateway"
	"staybook/internal/pkg/jwt"
	"staybook/internal/usecase"
	"staybook/tests/mock/usecasemock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthFixture(t *testing.T) (*usecasemock.MockIdentityGateway, usecase.AuthUseCase, *jwt.Service) {
	t.Helper()
	mockCtrl := gomock.NewController(t)
	gw := usecasemock.NewMockIdentityGateway(mockCtrl)
	jwtSvc := jwt.NewService("test-secret", time.Hour)
	return gw, usecase.NewAuthUseCase(gw, jwtSvc), jwtSvc
}

func TestAuthLogin(t *testing.T) {
	t.Run("mints a local token for the remote identity", func(t *testing.T) {
		gw, uc, jwtSvc := newAuthFixture(t)

		gw.EXPECT().Login(gomock.Any(), "aditi", "secret").
			Return(&gateway.RemoteUser{ID: 42, Username: "aditi"}, nil)

		result, err := uc.Login(context.Background(), "aditi", "secret")
		require.NoError(t, err)

		assert.Equal(t, int64(42), result.UserID)
		assert.Equal(t, time.Hour, result.ExpiresIn)

		claims, err := jwtSvc.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, "aditi", claims.Username)
	})

	t.Run("unauthorized maps to invalid credentials", func(t *testing.T) {
		gw, uc, _ := newAuthFixture(t)

		gw.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapGatewayErr(discardLogger(), infra.KindUnauthorized, "bad credentials", nil))

		_, err := uc.Login(context.Background(), "aditi", "wrong")
		assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})

	t.Run("unknown user maps to invalid credentials", func(t *testing.T) {
		gw, uc, _ := newAuthFixture(t)

		gw.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapGatewayErr(discardLogger(), infra.KindNotFound, "no such user", nil))

		_, err := uc.Login(context.Background(), "ghost", "secret")
		assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})

	t.Run("transport failure maps to upstream error", func(t *testing.T) {
		gw, uc, _ := newAuthFixture(t)

		gw.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		_, err := uc.Login(context.Background(), "aditi", "secret")
		assert.ErrorIs(t, err, usecase.ErrAuthUpstream)
	})
}

func TestAuthRegister(t *testing.T) {
	params := usecase.RegisterParams{
		Username: "aditi",
		Password: "secret123",
		Email:    "aditi@example.com",
		FullName: "Aditi Sharma",
	}

	t.Run("forwards the account to the remote API", func(t *testing.T) {
		gw, uc, _ := newAuthFixture(t)

		gw.EXPECT().Register(gomock.Any(), "aditi", "secret123", "aditi@example.com", "Aditi Sharma").
			Return(nil)

		require.NoError(t, uc.Register(context.Background(), params))
	})

	t.Run("duplicate account maps to already exists", func(t *testing.T) {
		gw, uc, _ := newAuthFixture(t)

		gw.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapGatewayErr(discardLogger(), infra.KindBadRequest, "username taken", nil))

		err := uc.Register(context.Background(), params)
		assert.ErrorIs(t, err, usecase.ErrUserAlreadyExists)
	})
}

func TestTokenValidator(t *testing.T) {
	jwtSvc := jwt.NewService("test-secret", time.Hour)
	validator := usecase.NewTokenValidator(jwtSvc)

	t.Run("resolves a valid token into a session", func(t *testing.T) {
		token, err := jwtSvc.GenerateToken(42, "aditi")
		require.NoError(t, err)

		session, err := validator.Validate(token)
		require.NoError(t, err)
		assert.True(t, session.Authenticated)
		assert.Equal(t, int64(42), session.UserID)
		assert.Equal(t, "aditi", session.Username)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := validator.Validate("not-a-token")
		assert.ErrorIs(t, err, usecase.ErrInvalidToken)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateToken(42, "aditi")
		require.NoError(t, err)

		_, err = validator.Validate(token)
		assert.ErrorIs(t, err, usecase.ErrInvalidToken)
	})
}
