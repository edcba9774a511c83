package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskValidator_ValidateTaskForCreation(t *testing.T) {
	tests := []struct {
		name     string
		taskName string
		wantErr  bool
		errField string
	}{
		{
			name:     "valid name",
			taskName: "Buy milk",
		},
		{
			name:     "minimum length name",
			taskName: "T",
		},
		{
			name:     "maximum length name",
			taskName: strings.Repeat("a", 100),
		},
		{
			name:     "maximum length multibyte name",
			taskName: strings.Repeat("é", 100),
		},
		{
			name:     "empty name",
			taskName: "",
			wantErr:  true,
			errField: "task_name",
		},
		{
			name:     "whitespace-only name",
			taskName: "   ",
			wantErr:  true,
			errField: "task_name",
		},
		{
			name:     "name over maximum length",
			taskName: strings.Repeat("a", 101),
			wantErr:  true,
			errField: "task_name",
		},
		{
			name:     "multibyte name over maximum length",
			taskName: strings.Repeat("é", 101),
			wantErr:  true,
			errField: "task_name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := NewTaskValidator()

			err := validator.ValidateTaskForCreation(tt.taskName)

			if tt.wantErr {
				require.Error(t, err)
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.NotEmpty(t, validationErr.GetFieldErrors(tt.errField))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTaskValidator_ValidateTaskForUpdate(t *testing.T) {
	name := "Renamed task"
	emptyName := ""
	longName := strings.Repeat("a", 101)
	status := true

	tests := []struct {
		name     string
		taskName *string
		status   *bool
		wantErr  bool
	}{
		{
			name:     "name only",
			taskName: &name,
		},
		{
			name:   "status only",
			status: &status,
		},
		{
			name:     "both fields",
			taskName: &name,
			status:   &status,
		},
		{
			name:    "neither field",
			wantErr: true,
		},
		{
			name:     "empty name provided",
			taskName: &emptyName,
			wantErr:  true,
		},
		{
			name:     "too long name provided",
			taskName: &longName,
			status:   &status,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := NewTaskValidator()

			err := validator.ValidateTaskForUpdate(tt.taskName, tt.status)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTaskValidator_GetValidTaskName(t *testing.T) {
	validator := NewTaskValidator()

	cleaned, err := validator.GetValidTaskName("  Buy milk  ")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", cleaned)

	_, err = validator.GetValidTaskName("   ")
	assert.Error(t, err)
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	validationErr := NewValidationError()
	assert.Equal(t, "Input validation failed", validationErr.GetUserFriendlyMessage())

	validationErr.AddRequiredError("task_name")
	assert.Equal(t, "task_name is required", validationErr.GetUserFriendlyMessage())

	validationErr.AddInvalidValueError("status", "maybe", "must be true or false")
	assert.Contains(t, validationErr.GetUserFriendlyMessage(), "Multiple validation errors")
}

func TestValidationError_MissingFields(t *testing.T) {
	validationErr := NewValidationError()
	validationErr.AddMissingFieldsError("task_name", "status")

	require.True(t, validationErr.HasErrors())
	assert.Contains(t, validationErr.Error(), "at least one of task_name, status")
}
