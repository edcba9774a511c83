package validation

import (
	"strings"
	"unicode/utf8"

	"task-service/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified
// range. Length is counted in characters, not bytes, so multibyte names
// are measured the same way the store's VARCHAR limit measures them.
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidTaskNameLength checks if a task name length is within configured limits
func (v *Validator) IsValidTaskNameLength(name string) bool {
	return v.IsValidStringLength(name, v.TaskNameMinLength(), v.TaskNameMaxLength())
}

// TrimString trims whitespace and returns the cleaned string
func (v *Validator) TrimString(s string) string {
	return strings.TrimSpace(s)
}

// TaskNameMinLength returns the configured minimum task name length or default
func (v *Validator) TaskNameMinLength() int {
	if v.config != nil {
		return v.config.Validation.TaskNameMinLength
	}
	return 1
}

// TaskNameMaxLength returns the configured maximum task name length or default
func (v *Validator) TaskNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TaskNameMaxLength
	}
	return 100
}
