package httpapi

import (
	"net/http"
	"time"

	"task-service/internal/logging"
	"task-service/internal/services"
)

// Server exposes the task CRUD operations over HTTP
type Server struct {
	service        services.TaskService
	logger         *logging.Logger
	mux            *http.ServeMux
	requestTimeout time.Duration
}

// NewServer creates an HTTP server around the given task service
func NewServer(service services.TaskService, logger *logging.Logger, requestTimeout time.Duration) *Server {
	srv := &Server{
		service:        service,
		logger:         logger,
		mux:            http.NewServeMux(),
		requestTimeout: requestTimeout,
	}

	srv.mux.HandleFunc("GET /healthz", srv.handleLiveness)
	srv.mux.HandleFunc("GET /health", srv.handleHealth)

	srv.mux.HandleFunc("POST /addtask", srv.handleCreateTask)
	srv.mux.HandleFunc("GET /tasks", srv.handleListTasks)
	srv.mux.HandleFunc("GET /tasks/{id}", srv.handleGetTask)
	srv.mux.HandleFunc("PATCH /tasks/{id}", srv.handlePatchTask)
	srv.mux.HandleFunc("DELETE /tasks/{id}", srv.handleDeleteTask)

	return srv
}

// ServeHTTP implements http.Handler with the middleware chain applied
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	withMiddleware(s.mux, s.logger, s.requestTimeout).ServeHTTP(w, r)
}
