package httpapi

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"

	"task-service/internal/errors"
	"task-service/internal/validation"
)

// errorBody is the JSON shape of every error response
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.More() {
		return stderrors.New("invalid JSON: multiple JSON values")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, kind, msg string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Kind: kind, Message: msg}})
}

// writeAppError maps a service error to the HTTP response the caller sees.
// Field-level validation errors keep their per-field messages.
func writeAppError(w http.ResponseWriter, err error) {
	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		fields := make([]string, 0, len(validationErr.Errors))
		for _, fieldErr := range validationErr.Errors {
			fields = append(fields, fieldErr.Message)
		}
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: errorDetail{
			Kind:    "validation",
			Message: validationErr.GetUserFriendlyMessage(),
			Fields:  fields,
		}})
		return
	}

	if appErr, ok := errors.AsAppError(err); ok {
		writeError(w, appErr.Type.HTTPStatus(), appErr.Type.String(), errors.GetUserMessage(err))
		return
	}

	writeError(w, http.StatusInternalServerError, "internal", "internal error")
}
