// Package database provides PostgreSQL connection management with lifecycle
// integration and startup schema migrations.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/fieldsign/fieldsign/pkg/lifecycle"
)

// System manages the database connection pool and schema migrations.
type System interface {
	// Connection returns the underlying connection pool.
	Connection() *sql.DB

	// Check verifies connectivity. Returns ErrNotReady before Start completes.
	Check(ctx context.Context) error

	// Start verifies connectivity, applies pending migrations, and registers
	// connection cleanup with the lifecycle coordinator.
	Start(lc *lifecycle.Coordinator) error
}

type system struct {
	db      *sql.DB
	cfg     *Config
	logger  *slog.Logger
	started atomic.Bool
}

// New opens a connection pool for the configured database.
// Connectivity is not verified until Start.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &system{
		db:     db,
		cfg:    cfg,
		logger: logger.With("system", "database"),
	}, nil
}

func (s *system) Connection() *sql.DB {
	return s.db
}

func (s *system) Check(ctx context.Context) error {
	if !s.started.Load() {
		return ErrNotReady
	}
	return s.db.PingContext(ctx)
}

func (s *system) Start(lc *lifecycle.Coordinator) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ConnTimeoutDuration())
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	if err := s.migrate(); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	s.started.Store(true)
	s.logger.Info("database started", "host", s.cfg.Host, "name", s.cfg.Name)

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := s.db.Close(); err != nil {
			s.logger.Error("database close failed", "error", err)
		} else {
			s.logger.Info("database connection closed")
		}
	})

	return nil
}

func (s *system) migrate() error {
	source := "file://" + s.cfg.MigrationsPath
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		s.cfg.User, s.cfg.Password, s.cfg.Host, s.cfg.Port, s.cfg.Name,
	)

	m, err := migrate.New(source, dsn)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	s.logger.Info("migrations applied", "version", version, "dirty", dirty)
	return nil
}
