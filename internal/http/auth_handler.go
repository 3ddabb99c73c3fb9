package http

import (
	"errors"
	"net/http"
	"strings"

	"task-manager-api.com/task-manager-api/internal/constants"
	dto "task-manager-api.com/task-manager-api/internal/data_models"
	"task-manager-api.com/task-manager-api/internal/http/validators"
	"task-manager-api.com/task-manager-api/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(rc *RequestContext) error {
	var req dto.RegisterRequest
	if err := bindBody(rc, &req); err != nil {
		return err
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err := validators.Validate(&req).Err(); err != nil {
		return err
	}

	user, token, err := h.authService.Register(rc.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			var result validators.Result
			result.Add("email", "The email has already been taken.")
			return result.Err()
		}
		return err
	}

	return rc.JSON(http.StatusCreated, dto.AuthResponse{
		User:      user,
		Token:     token,
		TokenType: constants.TokenType,
	})
}

func (h *AuthHandler) Login(rc *RequestContext) error {
	var req dto.LoginRequest
	if err := bindBody(rc, &req); err != nil {
		return err
	}
	req.Email = strings.TrimSpace(req.Email)

	if err := validators.Validate(&req).Err(); err != nil {
		return err
	}

	user, token, err := h.authService.Login(rc.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return rc.JSON(http.StatusOK, dto.AuthResponse{
		User:      user,
		Token:     token,
		TokenType: constants.TokenType,
	})
}

func (h *AuthHandler) Logout(rc *RequestContext) error {
	if err := h.authService.Logout(rc.Request().Context(), rc.Claims); err != nil {
		return err
	}

	return rc.JSON(http.StatusOK, dto.MessageResponse{Message: constants.LoggedOutMessage})
}
