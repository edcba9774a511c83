package httpapi

import (
	"errors"
	"net/url"
	"strings"

	"task-service/internal/domain"
	"task-service/internal/validation"
)

// parseListFilter extracts the optional task_name and status constraints
// from the list query string. Both are combinable with logical AND.
func parseListFilter(q url.Values) (domain.TaskFilter, error) {
	var filter domain.TaskFilter

	if name := strings.TrimSpace(q.Get("task_name")); name != "" {
		filter.TaskName = &name
	}

	if v := q.Get("status"); v != "" {
		parsed, err := parseBoolStrict(v)
		if err != nil {
			validationErr := validation.NewValidationError()
			validationErr.AddInvalidValueError("status", v, "must be true or false")
			return domain.TaskFilter{}, validationErr
		}
		filter.Status = &parsed
	}

	return filter, nil
}

func parseBoolStrict(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, errors.New("not a bool")
	}
}
