// Package infrastructure provides core service initialization for application
// startup. It assembles the shared dependencies (lifecycle, logging, database,
// blob storage) that the domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/fieldsign/fieldsign/internal/config"
	"github.com/fieldsign/fieldsign/pkg/database"
	"github.com/fieldsign/fieldsign/pkg/lifecycle"
	"github.com/fieldsign/fieldsign/pkg/logging"
	"github.com/fieldsign/fieldsign/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, database access, and signature asset storage.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
}

// New creates an Infrastructure from the service configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Storage:   store,
	}, nil
}

// Start brings up the infrastructure systems and registers their shutdown
// hooks with the lifecycle coordinator. Database start runs pending schema
// migrations before the service accepts traffic.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.Storage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	return nil
}
