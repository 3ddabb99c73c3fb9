package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"task-manager-api.com/task-manager-api/internal/auth"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
	model "task-manager-api.com/task-manager-api/internal/models"
	repository "task-manager-api.com/task-manager-api/internal/repositories"
	"task-manager-api.com/task-manager-api/internal/revocation"
)

// ErrEmailTaken is returned by Register when the address already has an account.
var ErrEmailTaken = repository.ErrEmailTaken

type AuthService struct {
	users   *repository.UserRepository
	tokens  *auth.TokenIssuer
	hasher  *auth.PasswordHasher
	revoked revocation.Store
}

func NewAuthService(
	users *repository.UserRepository,
	tokens *auth.TokenIssuer,
	hasher *auth.PasswordHasher,
	revoked revocation.Store,
) *AuthService {
	return &AuthService{
		users:   users,
		tokens:  tokens,
		hasher:  hasher,
		revoked: revoked,
	}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)

	taken, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", ErrEmailTaken
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{Name: name, Email: email, Password: hashed}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, _, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	slog.InfoContext(ctx, "user registered", "user_id", user.ID)
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := s.hasher.Compare(user.Password, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMatch) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("compare password: %w", err)
	}

	token, _, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Authenticate resolves a bearer token to its user. Every token problem maps
// to ErrUnauthenticated; store failures are returned as-is.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*model.User, *auth.Claims, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		slog.DebugContext(ctx, "bearer token rejected", "reason", err)
		return nil, nil, apperrors.ErrUnauthenticated
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, nil, err
	}
	if revoked {
		return nil, nil, apperrors.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, apperrors.ErrUnauthenticated
		}
		return nil, nil, err
	}

	return user, claims, nil
}

func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if err := s.revoked.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return err
	}

	slog.InfoContext(ctx, "user logged out", "user_id", claims.UserID)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
