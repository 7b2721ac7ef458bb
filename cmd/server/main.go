package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fieldsign/fieldsign/internal/config"
	"github.com/fieldsign/fieldsign/internal/infrastructure"
	"github.com/fieldsign/fieldsign/internal/routes"
	"github.com/fieldsign/fieldsign/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("service failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Finalize(); err != nil {
		return err
	}

	infra, err := infrastructure.New(cfg)
	if err != nil {
		return err
	}
	if err := infra.Start(); err != nil {
		return err
	}

	domain := NewDomain(infra, cfg)

	routeSys := routes.New(infra.Logger)
	if err := registerRoutes(routeSys, infra, domain, cfg); err != nil {
		return err
	}

	handler := buildHandler(routeSys, infra, cfg)

	srv := server.New(cfg, handler, infra.Logger)
	if err := srv.Start(infra.Lifecycle); err != nil {
		return err
	}

	infra.Lifecycle.WaitForStartup()
	infra.Logger.Info("service ready",
		"version", cfg.Version,
		"addr", cfg.Server.Addr(),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	infra.Logger.Info("shutdown signal received")
	return infra.Lifecycle.Shutdown(cfg.ShutdownTimeoutDuration())
}
