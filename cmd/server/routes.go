package main

import (
	"net/http"

	"github.com/fieldsign/fieldsign/internal/config"
	"github.com/fieldsign/fieldsign/internal/docfields"
	"github.com/fieldsign/fieldsign/internal/documents"
	"github.com/fieldsign/fieldsign/internal/footprints"
	"github.com/fieldsign/fieldsign/internal/infrastructure"
	"github.com/fieldsign/fieldsign/internal/signing"
	"github.com/fieldsign/fieldsign/internal/templates"
	"github.com/fieldsign/fieldsign/pkg/lifecycle"
	"github.com/fieldsign/fieldsign/pkg/openapi"
	pkgroutes "github.com/fieldsign/fieldsign/pkg/routes"
)

// registerRoutes configures all HTTP routes for the service.
func registerRoutes(r pkgroutes.System, infra *infrastructure.Infrastructure, domain *Domain, cfg *config.Config) error {
	maxUpload := cfg.Storage.MaxUploadSizeBytes()

	templateHandler := templates.NewHandler(domain.Templates, infra.Logger, cfg.Pagination)
	fieldHandler := docfields.NewHandler(domain.DocFields, infra.Storage, infra.Logger, maxUpload)
	footprintHandler := footprints.NewHandler(domain.Footprints, infra.Logger, cfg.Pagination)
	signingHandler := signing.NewHandler(domain.Signing, domain.Documents, infra.Logger)
	documentHandler := documents.NewHandler(
		domain.Documents,
		domain.DocFields,
		infra.Storage,
		infra.Logger,
		cfg.Pagination,
		maxUpload,
	)

	r.RegisterGroup(pkgroutes.Group{
		Prefix: cfg.Server.BasePath,
		Children: []pkgroutes.Group{
			templateHandler.Routes(),
			documentHandler.Routes(),
			fieldHandler.Routes(),
			signingHandler.Routes(),
			footprintHandler.Routes(),
		},
	})

	r.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: handleHealthCheck,
		OpenAPI: &openapi.Operation{
			Summary: "Health check endpoint",
			Tags:    []string{"Infrastructure"},
			Responses: map[int]*openapi.Response{
				200: {Description: "Service is healthy"},
			},
		},
	})

	r.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/readyz",
		Handler: func(w http.ResponseWriter, req *http.Request) {
			handleReadinessCheck(w, infra.Lifecycle)
		},
		OpenAPI: &openapi.Operation{
			Summary: "Readiness check endpoint",
			Tags:    []string{"Infrastructure"},
			Responses: map[int]*openapi.Response{
				200: {Description: "Service is ready"},
				503: {Description: "Service not ready"},
			},
		},
	})

	components := openapi.NewComponents()
	components.AddSchemas(templates.Spec.Schemas())
	components.AddSchemas(documents.Spec.Schemas())
	components.AddSchemas(docfields.Spec.Schemas())
	components.AddSchemas(signing.Spec.Schemas())
	components.AddSchemas(footprints.Spec.Schemas())

	specBytes, err := loadOrGenerateSpec(cfg, r, components)
	if err != nil {
		return err
	}

	r.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: cfg.Server.BasePath + "/openapi.json",
		Handler: serveOpenAPISpec(specBytes),
	})

	return nil
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadinessCheck(w http.ResponseWriter, ready lifecycle.ReadinessChecker) {
	if !ready.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}

func serveOpenAPISpec(spec []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(spec)
	}
}
