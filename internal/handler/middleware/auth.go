package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"staybook/internal/pkg/cookie"
	"staybook/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxSessionKey = "session"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth rejects requests without a valid token. The 401 payload
// carries the path the caller was after so the login page can send them
// back once authenticated.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
				"login": "/login",
				"from":  c.Request.URL.RequestURI(),
			})
			c.Abort()
			return
		}

		session, err := m.tokenValidator.Validate(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
				"login": "/login",
				"from":  c.Request.URL.RequestURI(),
			})
			c.Abort()
			return
		}

		c.Set(ctxSessionKey, session)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// GetSession returns the authenticated session, or the anonymous one when
// no valid token was presented.
func GetSession(c *gin.Context) usecase.Session {
	value, exists := c.Get(ctxSessionKey)
	if !exists {
		return usecase.AnonymousSession()
	}

	session, ok := value.(usecase.Session)
	if !ok {
		return usecase.AnonymousSession()
	}
	return session
}
