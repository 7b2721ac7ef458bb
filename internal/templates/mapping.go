package templates

import (
	"net/url"

	"github.com/fieldsign/fieldsign/pkg/query"
	"github.com/fieldsign/fieldsign/pkg/repository"
)

var projection = query.NewProjectionMap("public", "templates", "t").
	Project("id", "Id").
	Project("name", "Name").
	Project("description", "Description").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var fieldProjection = query.NewProjectionMap("public", "template_fields", "tf").
	Project("id", "Id").
	Project("template_id", "TemplateId").
	Project("position", "Position").
	Project("kind", "Kind").
	Project("name", "Name").
	Project("placeholder", "Placeholder").
	Project("page", "Page").
	Project("x_position", "XPosition").
	Project("y_position", "YPosition").
	Project("width", "Width").
	Project("height", "Height").
	Project("required", "Required").
	Project("metadata", "Metadata").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

const defaultSort = "CreatedAt"

func scanTemplate(s repository.Scanner) (Template, error) {
	var t Template
	err := s.Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	return t, err
}

func scanField(s repository.Scanner) (Field, error) {
	var f Field
	err := s.Scan(
		&f.ID,
		&f.TemplateID,
		&f.Position,
		&f.Kind,
		&f.Name,
		&f.Placeholder,
		&f.Geometry.Page,
		&f.Geometry.X,
		&f.Geometry.Y,
		&f.Geometry.Width,
		&f.Geometry.Height,
		&f.Required,
		&f.Metadata,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	return f, err
}

// Filters contains optional criteria for filtering template queries.
type Filters struct {
	Name *string
}

// FiltersFromQuery extracts template filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if n := values.Get("name"); n != "" {
		f.Name = &n
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.WhereContains("Name", f.Name)
}
