package validation

import (
	"task-service/internal/config"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a new task validator using configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTaskName validates a task name for creation or update
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()

	trimmedName := tv.validator.TrimString(name)

	if !tv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("task_name")
		return validationError
	}

	if !tv.validator.IsValidTaskNameLength(trimmedName) {
		validationError.AddInvalidLengthError("task_name", trimmedName,
			tv.validator.TaskNameMinLength(), tv.validator.TaskNameMaxLength())
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskForCreation validates a task creation payload
func (tv *TaskValidator) ValidateTaskForCreation(name string) error {
	return tv.ValidateTaskName(name)
}

// ValidateTaskForUpdate validates a partial update payload. At least one of
// name or status must be present; a present name obeys the creation rules.
func (tv *TaskValidator) ValidateTaskForUpdate(name *string, status *bool) error {
	validationError := NewValidationError()

	if name == nil && status == nil {
		validationError.AddMissingFieldsError("task_name", "status")
		return validationError
	}

	if name != nil {
		if nameErr := tv.ValidateTaskName(*name); nameErr != nil {
			if nameValidationErr, ok := nameErr.(*ValidationError); ok {
				validationError.Errors = append(validationError.Errors, nameValidationErr.Errors...)
			}
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// GetValidTaskName returns a cleaned task name if valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return tv.validator.TrimString(name), nil
}
