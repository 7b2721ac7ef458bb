// Package routes defines the route registration model shared by all domain
// handlers: routes, hierarchical groups, and the System that builds an
// http.Handler from them.
package routes

import (
	"net/http"

	"github.com/fieldsign/fieldsign/pkg/openapi"
)

// Group represents a collection of routes with a common prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

// Route represents an HTTP route with method, pattern, and handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}
