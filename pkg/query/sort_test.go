package query_test

import (
	"reflect"
	"testing"

	"github.com/fieldsign/fieldsign/pkg/query"
)

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want []query.SortField
	}{
		{"empty", "", nil},
		{"single ascending", "name", []query.SortField{{Field: "name"}}},
		{"single descending", "-created_at", []query.SortField{{Field: "created_at", Descending: true}}},
		{
			"mixed",
			"status,-created_at",
			[]query.SortField{
				{Field: "status"},
				{Field: "created_at", Descending: true},
			},
		},
		{
			"whitespace and empty parts",
			" name , ,-page ",
			[]query.SortField{
				{Field: "name"},
				{Field: "page", Descending: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.ParseSortFields(tt.expr)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSortFields(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}
