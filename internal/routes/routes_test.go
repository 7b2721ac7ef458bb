package routes_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/fieldsign/fieldsign/internal/routes"
	pkgroutes "github.com/fieldsign/fieldsign/pkg/routes"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func respond(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}
}

func TestBuild_DirectRoutes(t *testing.T) {
	sys := routes.New(testLogger())
	sys.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: respond(http.StatusOK),
	})

	handler := sys.Build()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestBuild_GroupPrefixes(t *testing.T) {
	sys := routes.New(testLogger())
	sys.RegisterGroup(pkgroutes.Group{
		Prefix: "/api",
		Children: []pkgroutes.Group{
			{
				Prefix: "/templates",
				Routes: []pkgroutes.Route{
					{Method: "GET", Pattern: "", Handler: respond(http.StatusOK)},
					{Method: "GET", Pattern: "/{id}", Handler: respond(http.StatusOK)},
				},
			},
			{
				Prefix: "/documents",
				Routes: []pkgroutes.Route{
					{Method: "POST", Pattern: "/{id}/sign", Handler: respond(http.StatusAccepted)},
				},
			},
		},
	})

	handler := sys.Build()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{"GET", "/api/templates", http.StatusOK},
		{"GET", "/api/templates/abc", http.StatusOK},
		{"POST", "/api/documents/abc/sign", http.StatusAccepted},
		{"GET", "/api/missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestBuild_MethodMismatch(t *testing.T) {
	sys := routes.New(testLogger())
	sys.RegisterGroup(pkgroutes.Group{
		Prefix: "/api",
		Routes: []pkgroutes.Route{
			{Method: "POST", Pattern: "/templates", Handler: respond(http.StatusCreated)},
		},
	})

	handler := sys.Build()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/templates", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestRegisteredCollectionsExposed(t *testing.T) {
	sys := routes.New(testLogger())
	sys.RegisterRoute(pkgroutes.Route{Method: "GET", Pattern: "/healthz", Handler: respond(http.StatusOK)})
	sys.RegisterGroup(pkgroutes.Group{Prefix: "/api"})

	if len(sys.Routes()) != 1 {
		t.Errorf("len(Routes()) = %d, want 1", len(sys.Routes()))
	}
	if len(sys.Groups()) != 1 {
		t.Errorf("len(Groups()) = %d, want 1", len(sys.Groups()))
	}
}
