package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"task-manager-api.com/task-manager-api/internal/auth"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
	model "task-manager-api.com/task-manager-api/internal/models"
)

const (
	userKey   = "auth.user"
	claimsKey = "auth.claims"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, *auth.Claims, error)
}

// RequireAuth rejects the request with 401 unless it carries a valid bearer token.
func RequireAuth(a Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return apperrors.ErrUnauthenticated
			}

			user, claims, err := a.Authenticate(c.Request().Context(), token)
			if err != nil {
				return err
			}

			setIdentity(c, user, claims)
			return next(c)
		}
	}
}

// OptionalAuth attaches the caller's identity when a valid token is present
// and lets anonymous requests through otherwise.
func OptionalAuth(a Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return next(c)
			}

			user, claims, err := a.Authenticate(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, apperrors.ErrUnauthenticated) {
					return next(c)
				}
				return err
			}

			setIdentity(c, user, claims)
			return next(c)
		}
	}
}

func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func setIdentity(c echo.Context, user *model.User, claims *auth.Claims) {
	c.Set(userKey, user)
	c.Set(claimsKey, claims)
}

// Identity returns what the auth middleware stored; both are nil for
// anonymous requests.
func Identity(c echo.Context) (*model.User, *auth.Claims) {
	user, _ := c.Get(userKey).(*model.User)
	claims, _ := c.Get(claimsKey).(*auth.Claims)
	return user, claims
}
