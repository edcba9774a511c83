package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConflictError(t *testing.T) {
	err := NewConflictError("task", "task_name", "Buy milk")

	assert.Equal(t, ErrorTypeConflict, err.Type)
	assert.Equal(t, "CONFLICT", err.Code)
	assert.Contains(t, err.Message, "already exists")

	value, exists := err.GetContext("value")
	require.True(t, exists)
	assert.Equal(t, "Buy milk", value)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "42")

	assert.Equal(t, ErrorTypeNotFound, err.Type)
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, "task not found: 42", err.Message)
}

func TestNewDatabaseError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewDatabaseError("insert task", cause)

	assert.Equal(t, ErrorTypeDatabase, err.Type)
	assert.Equal(t, cause, err.Cause)
	assert.ErrorIs(t, err, err) // sanity: Is matches same type and code
}

func TestIsErrorType(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		errorType ErrorType
		expected  bool
	}{
		{
			name:      "matching type",
			err:       NewNotFoundError("task", "1"),
			errorType: ErrorTypeNotFound,
			expected:  true,
		},
		{
			name:      "wrapped matching type",
			err:       fmt.Errorf("outer: %w", NewConflictError("task", "task_name", "x")),
			errorType: ErrorTypeConflict,
			expected:  true,
		},
		{
			name:      "non-matching type",
			err:       NewValidationError("bad input", nil),
			errorType: ErrorTypeNotFound,
			expected:  false,
		},
		{
			name:      "plain error",
			err:       fmt.Errorf("plain"),
			errorType: ErrorTypeDatabase,
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsErrorType(tt.err, tt.errorType))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", NewValidationError("bad", nil), http.StatusUnprocessableEntity},
		{"not found", NewNotFoundError("task", "1"), http.StatusNotFound},
		{"conflict", NewConflictError("task", "task_name", "x"), http.StatusConflict},
		{"database", NewDatabaseError("query", nil), http.StatusServiceUnavailable},
		{"plain error", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestGetUserMessage(t *testing.T) {
	assert.Equal(t, "task not found: 42", GetUserMessage(NewNotFoundError("task", "42")))
	assert.Equal(t, "A database error occurred. Please try again.",
		GetUserMessage(NewDatabaseError("query", fmt.Errorf("secret details"))))
	assert.Equal(t, "plain", GetUserMessage(fmt.Errorf("plain")))
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewValidationError("bad", nil)))
	assert.False(t, ShouldLogError(NewNotFoundError("task", "1")))
	assert.False(t, ShouldLogError(NewConflictError("task", "task_name", "x")))
	assert.True(t, ShouldLogError(NewDatabaseError("query", nil)))
	assert.True(t, ShouldLogError(fmt.Errorf("unknown")))
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(fmt.Errorf("wrapped: %w", NewNotFoundError("task", "7")))
	require.True(t, ok)
	assert.Equal(t, ErrorTypeNotFound, appErr.Type)

	_, ok = AsAppError(fmt.Errorf("plain"))
	assert.False(t, ok)
}
