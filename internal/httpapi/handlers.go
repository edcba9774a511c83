package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"task-service/internal/domain"
	"task-service/internal/errors"
	"task-service/internal/validation"
)

func (s *Server) handleLiveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Health(r.Context()); err != nil {
		if errors.ShouldLogError(err) {
			s.logger.Error("health check failed", map[string]any{"err": err.Error()})
		}
		writeError(w, http.StatusServiceUnavailable, "database", "store unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": "connected",
	})
}

type createTaskRequest struct {
	TaskName string `json:"task_name"`
	Status   bool   `json:"status"`
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation", err.Error())
		return
	}

	created, err := s.service.CreateTask(r.Context(), req.TaskName, req.Status)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		writeAppError(w, err)
		return
	}

	tasks, err := s.service.ListTasks(r.Context(), filter)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseTaskID(r)
	if err != nil {
		writeAppError(w, err)
		return
	}

	task, err := s.service.GetTask(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

type patchTaskRequest struct {
	TaskName *string `json:"task_name,omitempty"`
	Status   *bool   `json:"status,omitempty"`
}

func (s *Server) handlePatchTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseTaskID(r)
	if err != nil {
		writeAppError(w, err)
		return
	}

	var req patchTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation", err.Error())
		return
	}

	updated, err := s.service.UpdateTask(r.Context(), id, domain.TaskUpdate{
		TaskName: req.TaskName,
		Status:   req.Status,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseTaskID(r)
	if err != nil {
		writeAppError(w, err)
		return
	}

	if err := s.service.DeleteTask(r.Context(), id); err != nil {
		s.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// respondError logs system errors and writes the mapped HTTP response.
// Client errors are only visible at debug level.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	if !validation.IsValidationError(err) && errors.ShouldLogError(err) {
		s.logger.Error("request failed", map[string]any{"err": err.Error()})
	} else {
		s.logger.Debug("request rejected", map[string]any{"err": err.Error()})
	}
	writeAppError(w, err)
}

// parseTaskID extracts and validates the {id} path segment
func parseTaskID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		validationErr := validation.NewValidationError()
		validationErr.AddInvalidValueError("id", raw, "must be an integer")
		return 0, validationErr
	}
	return id, nil
}
