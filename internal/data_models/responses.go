package dto

import model "task-manager-api.com/task-manager-api/internal/models"

type TaskEnvelope struct {
	Task *model.Task `json:"task"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AuthResponse struct {
	User      *model.User `json:"user"`
	Token     string      `json:"token"`
	TokenType string      `json:"token_type"`
}
