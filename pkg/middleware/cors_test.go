package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/fieldsign/fieldsign/pkg/middleware"
)

func corsConfig() *middleware.CORSConfig {
	return &middleware.CORSConfig{
		Enabled:        true,
		Origins:        []string{"http://localhost:5173"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}
}

func TestCORS_AllowedOrigin(t *testing.T) {
	handler := middleware.CORS(corsConfig())(okHandler())

	req := httptest.NewRequest("GET", "/api/documents", nil)
	req.Header.Set("Origin", "http://localhost:5173")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Allow-Origin = %q, want %q", got, "http://localhost:5173")
	}

	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST" {
		t.Errorf("Allow-Methods = %q, want %q", got, "GET, POST")
	}

	if got := rec.Header().Get("Access-Control-Max-Age"); got != "300" {
		t.Errorf("Max-Age = %q, want %q", got, "300")
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	handler := middleware.CORS(corsConfig())(okHandler())

	req := httptest.NewRequest("GET", "/api/documents", nil)
	req.Header.Set("Origin", "http://evil.example.com")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q for disallowed origin, want empty", got)
	}
}

func TestCORS_Disabled(t *testing.T) {
	cfg := corsConfig()
	cfg.Enabled = false
	handler := middleware.CORS(cfg)(okHandler())

	req := httptest.NewRequest("GET", "/api/documents", nil)
	req.Header.Set("Origin", "http://localhost:5173")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q with CORS disabled, want empty", got)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	handler := middleware.CORS(corsConfig())(next)

	req := httptest.NewRequest("OPTIONS", "/api/documents", nil)
	req.Header.Set("Origin", "http://localhost:5173")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}

	if called {
		t.Error("next handler called for preflight request")
	}
}

func TestCORS_AllowCredentials(t *testing.T) {
	cfg := corsConfig()
	cfg.AllowCredentials = true
	handler := middleware.CORS(cfg)(okHandler())

	req := httptest.NewRequest("GET", "/api/documents", nil)
	req.Header.Set("Origin", "http://localhost:5173")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Allow-Credentials = %q, want %q", got, "true")
	}
}

func TestCORSConfig_FinalizeDefaults(t *testing.T) {
	cfg := &middleware.CORSConfig{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if len(cfg.AllowedMethods) == 0 {
		t.Error("AllowedMethods empty after Finalize")
	}
	if len(cfg.AllowedHeaders) == 0 {
		t.Error("AllowedHeaders empty after Finalize")
	}
	if cfg.MaxAge != 3600 {
		t.Errorf("MaxAge = %d, want 3600", cfg.MaxAge)
	}
}

func TestCORSConfig_FinalizeEnvOverride(t *testing.T) {
	os.Setenv("TEST_CORS_ORIGINS", "http://a.example.com, http://b.example.com")
	defer os.Unsetenv("TEST_CORS_ORIGINS")

	cfg := &middleware.CORSConfig{}
	env := &middleware.CORSEnv{Origins: "TEST_CORS_ORIGINS"}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if len(cfg.Origins) != 2 {
		t.Fatalf("len(Origins) = %d, want 2", len(cfg.Origins))
	}
	if cfg.Origins[0] != "http://a.example.com" || cfg.Origins[1] != "http://b.example.com" {
		t.Errorf("Origins = %v, want trimmed list", cfg.Origins)
	}
}

func TestCORSConfig_Merge(t *testing.T) {
	cfg := &middleware.CORSConfig{Origins: []string{"http://localhost:5173"}, MaxAge: 300}
	cfg.Merge(&middleware.CORSConfig{Enabled: true, Origins: []string{"http://app.example.com"}})

	if !cfg.Enabled {
		t.Error("Enabled = false after merge, want true")
	}
	if len(cfg.Origins) != 1 || cfg.Origins[0] != "http://app.example.com" {
		t.Errorf("Origins = %v, want overlay value", cfg.Origins)
	}
	if cfg.MaxAge != 300 {
		t.Errorf("MaxAge = %d, want 300", cfg.MaxAge)
	}
}
