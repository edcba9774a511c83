package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"task-service/internal/config"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsNonEmptyString("task"))
	assert.True(t, v.IsNonEmptyString("  task  "))
	assert.False(t, v.IsNonEmptyString(""))
	assert.False(t, v.IsNonEmptyString("   "))
	assert.False(t, v.IsNonEmptyString("\t\n"))
}

func TestValidator_IsValidStringLength(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsValidStringLength("abc", 1, 5))
	assert.True(t, v.IsValidStringLength("  abc  ", 3, 3)) // trimmed before measuring
	assert.False(t, v.IsValidStringLength("", 1, 5))
	assert.False(t, v.IsValidStringLength("abcdef", 1, 5))

	// multibyte strings are measured in characters, not bytes
	assert.True(t, v.IsValidStringLength("éàü", 3, 3))
	assert.True(t, v.IsValidStringLength("日本語のタスク", 1, 7))
	assert.False(t, v.IsValidStringLength("éàüö", 1, 3))
}

func TestValidator_DefaultLimits(t *testing.T) {
	v := NewValidator()

	assert.Equal(t, 1, v.TaskNameMinLength())
	assert.Equal(t, 100, v.TaskNameMaxLength())
}

func TestValidator_ConfiguredLimits(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.TaskNameMinLength = 3
	cfg.Validation.TaskNameMaxLength = 10

	v := NewValidatorWithConfig(cfg)

	assert.Equal(t, 3, v.TaskNameMinLength())
	assert.Equal(t, 10, v.TaskNameMaxLength())
	assert.False(t, v.IsValidTaskNameLength("ab"))
	assert.True(t, v.IsValidTaskNameLength("abcd"))
	assert.False(t, v.IsValidTaskNameLength("abcdefghijk"))
}
