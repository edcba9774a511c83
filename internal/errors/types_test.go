package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "validation"},
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypeConflict, "conflict"},
		{ErrorTypeDatabase, "database"},
		{ErrorTypeInvalidInput, "invalid_input"},
		{ErrorTypeInternal, "internal"},
		{ErrorType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestErrorType_HTTPStatus(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  int
	}{
		{ErrorTypeValidation, http.StatusUnprocessableEntity},
		{ErrorTypeInvalidInput, http.StatusUnprocessableEntity},
		{ErrorTypeNotFound, http.StatusNotFound},
		{ErrorTypeConflict, http.StatusConflict},
		{ErrorTypeDatabase, http.StatusServiceUnavailable},
		{ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.errorType.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.HTTPStatus())
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Type:    ErrorTypeNotFound,
				Message: "task not found: 42",
			},
			expected: "not_found: task not found: 42",
		},
		{
			name: "error with cause",
			err: &AppError{
				Type:    ErrorTypeDatabase,
				Message: "query failed",
				Cause:   fmt.Errorf("connection refused"),
			},
			expected: "database: query failed (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_IsType(t *testing.T) {
	err := NewConflictError("task", "task_name", "Buy milk")
	assert.True(t, err.IsType(ErrorTypeConflict))
	assert.False(t, err.IsType(ErrorTypeNotFound))
}

func TestAppError_WithContext(t *testing.T) {
	err := NewNotFoundError("task", "1").WithContext("extra", "value")

	value, exists := err.GetContext("extra")
	assert.True(t, exists)
	assert.Equal(t, "value", value)

	_, exists = err.GetContext("missing")
	assert.False(t, exists)
}
