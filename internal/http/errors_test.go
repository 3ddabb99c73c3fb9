package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	apperrors "task-manager-api.com/task-manager-api/internal/errors"
	"task-manager-api.com/task-manager-api/internal/http/validators"
)

func TestRender(t *testing.T) {
	var invalid validators.Result
	invalid.Add("title", "The title field is required.")

	tests := []struct {
		name    string
		err     error
		status  int
		message string
		fields  map[string][]string
	}{
		{"exception", apperrors.ErrTaskNotFound, http.StatusNotFound, "Task not found.", nil},
		{"wrapped exception", fmt.Errorf("find: %w", apperrors.ErrUnauthenticated), http.StatusUnauthorized, "Unauthenticated.", nil},
		{"validation", invalid.Err(), http.StatusUnprocessableEntity, "The title field is required.", map[string][]string{"title": {"The title field is required."}}},
		{"echo error", echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), http.StatusMethodNotAllowed, "Method Not Allowed", nil},
		{"echo error without text", echo.NewHTTPError(http.StatusBadGateway, 42), http.StatusBadGateway, "Bad Gateway", nil},
		{"unknown", fmt.Errorf("disk full"), http.StatusInternalServerError, "Server Error", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := render(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, tt.fields, body.Errors)
		})
	}
}

func TestErrorHandler_HeadHasNoBody(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodHead, "/", nil), rec)

	ErrorHandler(apperrors.ErrTaskNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}
