package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestException_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("lookup: %w", ErrTaskNotFound)

	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.Equal(t, "lookup: Task not found.", err.Error())

	var appErr *Exception
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
}

func TestSentinelStatuses(t *testing.T) {
	tests := []struct {
		err    *Exception
		status int
	}{
		{ErrTaskNotFound, http.StatusNotFound},
		{ErrUnauthenticated, http.StatusUnauthorized},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrInvalidJSON, http.StatusBadRequest},
		{ErrTooManyRequests, http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.err.Message, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.StatusCode)
		})
	}
}
