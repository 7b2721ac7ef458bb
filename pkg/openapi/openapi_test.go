package openapi_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fieldsign/fieldsign/pkg/openapi"
)

func TestMarshalJSON(t *testing.T) {
	spec := &openapi.Spec{
		OpenAPI: "3.1.0",
		Info: &openapi.Info{
			Title:   "FieldSign API",
			Version: "0.1.0",
		},
		Servers: []*openapi.Server{{URL: "http://localhost:8080"}},
		Paths: map[string]*openapi.PathItem{
			"/api/templates": {
				Get: &openapi.Operation{
					Summary: "List templates",
					Tags:    []string{"Templates"},
					Responses: map[int]*openapi.Response{
						200: {Description: "Template page"},
					},
				},
			},
		},
	}

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("MarshalJSON() failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded["openapi"] != "3.1.0" {
		t.Errorf("openapi = %v, want 3.1.0", decoded["openapi"])
	}

	if !strings.Contains(string(data), "  \"info\"") {
		t.Error("output is not indented")
	}
}

func TestMarshalJSON_NoHTMLEscaping(t *testing.T) {
	spec := &openapi.Spec{
		OpenAPI: "3.1.0",
		Info:    &openapi.Info{Title: "FieldSign API", Description: "signing & evidence"},
	}

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("MarshalJSON() failed: %v", err)
	}

	if strings.Contains(string(data), "\\u0026") {
		t.Error("ampersand was HTML-escaped")
	}
}

func TestNewComponents_SharedDefinitions(t *testing.T) {
	components := openapi.NewComponents()

	if _, ok := components.Schemas["PageRequest"]; !ok {
		t.Error("PageRequest schema missing from shared components")
	}

	for _, name := range []string{"BadRequest", "NotFound", "Conflict"} {
		if _, ok := components.Responses[name]; !ok {
			t.Errorf("%s response missing from shared components", name)
		}
	}
}

func TestComponents_AddSchemas(t *testing.T) {
	components := openapi.NewComponents()

	components.AddSchemas(map[string]*openapi.Schema{
		"Template": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":   {Type: "string", Format: "uuid"},
				"name": {Type: "string"},
			},
			Required: []string{"id", "name"},
		},
	})

	schema, ok := components.Schemas["Template"]
	if !ok {
		t.Fatal("Template schema not added")
	}

	if schema.Properties["id"].Format != "uuid" {
		t.Errorf("id format = %q, want uuid", schema.Properties["id"].Format)
	}

	if _, ok := components.Schemas["PageRequest"]; !ok {
		t.Error("adding schemas removed shared definitions")
	}
}

func TestSchemaRef(t *testing.T) {
	ref := openapi.SchemaRef("Template")
	if ref.Ref != "#/components/schemas/Template" {
		t.Errorf("Ref = %q, want schema pointer", ref.Ref)
	}
}
