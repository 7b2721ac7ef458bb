package main

import (
	"net/http"

	"github.com/fieldsign/fieldsign/internal/config"
	"github.com/fieldsign/fieldsign/internal/infrastructure"
	"github.com/fieldsign/fieldsign/pkg/middleware"
	pkgroutes "github.com/fieldsign/fieldsign/pkg/routes"
)

// buildHandler wraps the route multiplexer in the middleware stack:
// trailing-slash normalization, request logging, and CORS.
func buildHandler(
	routeSys pkgroutes.System,
	infra *infrastructure.Infrastructure,
	cfg *config.Config,
) http.Handler {
	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.TrimSlash())
	middlewareSys.Use(middleware.Logger(infra.Logger))
	middlewareSys.Use(middleware.CORS(&cfg.CORS))
	return middlewareSys.Wrap(routeSys.Build())
}
