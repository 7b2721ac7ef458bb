package query_test

import (
	"testing"

	"github.com/fieldsign/fieldsign/pkg/query"
)

func TestNewProjectionMap(t *testing.T) {
	pm := query.NewProjectionMap("public", "documents", "d")

	if pm.Alias() != "d" {
		t.Errorf("Alias() = %q, want %q", pm.Alias(), "d")
	}

	if pm.Table() != "public.documents d" {
		t.Errorf("Table() = %q, want %q", pm.Table(), "public.documents d")
	}
}

func TestProjectionMap_Column(t *testing.T) {
	pm := query.NewProjectionMap("public", "document_fields", "df").
		Project("id", "Id").
		Project("x_position", "XPosition").
		Project("created_at", "CreatedAt")

	tests := []struct {
		viewName string
		wantCol  string
	}{
		{"Id", "df.id"},
		{"XPosition", "df.x_position"},
		{"CreatedAt", "df.created_at"},
	}

	for _, tt := range tests {
		t.Run(tt.viewName, func(t *testing.T) {
			if col := pm.Column(tt.viewName); col != tt.wantCol {
				t.Errorf("Column(%q) = %q, want %q", tt.viewName, col, tt.wantCol)
			}
		})
	}
}

func TestProjectionMap_Column_UnknownReturnsInput(t *testing.T) {
	pm := query.NewProjectionMap("public", "documents", "d").
		Project("id", "Id")

	if col := pm.Column("Unknown"); col != "Unknown" {
		t.Errorf("Column(%q) = %q, want %q", "Unknown", col, "Unknown")
	}
}

func TestProjectionMap_Columns(t *testing.T) {
	pm := query.NewProjectionMap("public", "templates", "t").
		Project("id", "Id").
		Project("name", "Name")

	if cols := pm.Columns(); cols != "t.id, t.name" {
		t.Errorf("Columns() = %q, want %q", cols, "t.id, t.name")
	}
}

func TestProjectionMap_ColumnList(t *testing.T) {
	pm := query.NewProjectionMap("public", "templates", "t").
		Project("id", "Id").
		Project("name", "Name")

	list := pm.ColumnList()
	if len(list) != 2 {
		t.Fatalf("len(ColumnList()) = %d, want 2", len(list))
	}

	if list[0] != "t.id" || list[1] != "t.name" {
		t.Errorf("ColumnList() = %v, want [t.id t.name]", list)
	}
}
