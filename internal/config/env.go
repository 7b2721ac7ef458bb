package config

import (
	"github.com/fieldsign/fieldsign/pkg/database"
	"github.com/fieldsign/fieldsign/pkg/logging"
	"github.com/fieldsign/fieldsign/pkg/middleware"
	"github.com/fieldsign/fieldsign/pkg/openapi"
	"github.com/fieldsign/fieldsign/pkg/pagination"
	"github.com/fieldsign/fieldsign/pkg/storage"
)

// Environment variable names recognized by the service. Each maps onto a
// configuration field and overrides both the base file and any overlay.

var databaseEnv = &database.Env{
	Host:            "DATABASE_HOST",
	Port:            "DATABASE_PORT",
	Name:            "DATABASE_NAME",
	User:            "DATABASE_USER",
	Password:        "DATABASE_PASSWORD",
	MaxOpenConns:    "DATABASE_MAX_OPEN_CONNS",
	MaxIdleConns:    "DATABASE_MAX_IDLE_CONNS",
	ConnMaxLifetime: "DATABASE_CONN_MAX_LIFETIME",
	ConnTimeout:     "DATABASE_CONN_TIMEOUT",
	MigrationsPath:  "DATABASE_MIGRATIONS_PATH",
}

var loggingEnv = &logging.Env{
	Level:  "LOGGING_LEVEL",
	Format: "LOGGING_FORMAT",
}

var storageEnv = &storage.Env{
	BasePath:      "STORAGE_BASE_PATH",
	MaxUploadSize: "STORAGE_MAX_UPLOAD_SIZE",
}

var corsEnv = &middleware.CORSEnv{
	Enabled:          "CORS_ENABLED",
	Origins:          "CORS_ORIGINS",
	AllowedMethods:   "CORS_ALLOWED_METHODS",
	AllowedHeaders:   "CORS_ALLOWED_HEADERS",
	AllowCredentials: "CORS_ALLOW_CREDENTIALS",
	MaxAge:           "CORS_MAX_AGE",
}

var paginationEnv = &pagination.Env{
	DefaultPageSize: "PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "PAGINATION_MAX_PAGE_SIZE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "OPENAPI_TITLE",
	Description: "OPENAPI_DESCRIPTION",
}
