package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"task-service/internal/httpapi"
	"task-service/internal/logging"
	"task-service/internal/services"
)

// newServeCommand creates the serve subcommand
func newServeCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the task service HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), root)
		},
	}
}

func serve(ctx context.Context, root *RootCommand) error {
	cfg := root.config

	var logger *logging.Logger
	if cfg.Application.Verbose {
		logger = logging.NewVerbose(os.Stdout)
	} else {
		logger = logging.New(os.Stdout)
	}

	logger.Debug("configuration resolved", map[string]any{
		"addr":            cfg.Server.Addr,
		"driver":          string(cfg.Database.Driver),
		"request_timeout": cfg.Server.RequestTimeout.String(),
		"query_timeout":   cfg.Database.QueryTimeout.String(),
	})

	factory := NewRepositoryFactory(cfg)
	repo, err := factory.CreateRepository(ctx)
	if err != nil {
		return err
	}
	defer repo.Close()

	service := services.NewTaskServiceWithConfig(repo, cfg)
	api := httpapi.NewServer(service, logger, cfg.Server.RequestTimeout)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	shutdownCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", map[string]any{
			"addr":   cfg.Server.Addr,
			"driver": string(cfg.Database.Driver),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-shutdownCtx.Done():
	}

	logger.Info("shutting down", nil)
	drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(drainCtx)
}
