// Package query constructs SQL queries from view-level field names.
// A ProjectionMap binds view names to table columns; the Builder composes
// filtered, sorted, and paginated SELECT statements against that mapping.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps view-level field names to aliased table columns.
type ProjectionMap struct {
	schema string
	table  string
	alias  string
	order  []string
	fields map[string]string
}

// NewProjectionMap creates a projection for the given schema, table, and alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		fields: make(map[string]string),
	}
}

// Project registers a column under a view-level field name. Registration
// order determines column order in generated SELECT statements.
func (p *ProjectionMap) Project(column, viewName string) *ProjectionMap {
	if _, exists := p.fields[viewName]; !exists {
		p.order = append(p.order, viewName)
	}
	p.fields[viewName] = column
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the qualified table reference including its alias.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Column resolves a view-level field name to its aliased column.
// Unknown names are returned unchanged.
func (p *ProjectionMap) Column(viewName string) string {
	col, ok := p.fields[viewName]
	if !ok {
		return viewName
	}
	return p.alias + "." + col
}

// Columns returns the comma-separated aliased column list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.ColumnList(), ", ")
}

// ColumnList returns the aliased columns in registration order.
func (p *ProjectionMap) ColumnList() []string {
	list := make([]string, 0, len(p.order))
	for _, viewName := range p.order {
		list = append(list, p.alias+"."+p.fields[viewName])
	}
	return list
}
