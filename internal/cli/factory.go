package cli

import (
	"context"
	"fmt"

	"task-service/internal/config"
	"task-service/internal/repository"
	"task-service/internal/repository/postgres"
	"task-service/internal/repository/sqlite"
)

// RepositoryFactory creates repository instances based on the configured driver
type RepositoryFactory struct {
	config *config.Config
}

// NewRepositoryFactory creates a new repository factory for the given configuration
func NewRepositoryFactory(cfg *config.Config) *RepositoryFactory {
	return &RepositoryFactory{config: cfg}
}

// CreateRepository creates a repository instance based on the configured driver
func (rf *RepositoryFactory) CreateRepository(ctx context.Context) (repository.Repository, error) {
	switch rf.config.Database.Driver {
	case config.DriverSQLite:
		repo, err := sqlite.New(rf.config.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite store: %w", err)
		}
		return repo, nil
	case config.DriverPostgres:
		repo, err := postgres.New(ctx, rf.config.PostgresDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres store: %w", err)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown database driver: %s", rf.config.Database.Driver)
	}
}
