package documents

import (
	"net/url"

	"github.com/fieldsign/fieldsign/pkg/query"
	"github.com/fieldsign/fieldsign/pkg/repository"
)

var projection = query.NewProjectionMap("public", "documents", "d").
	Project("id", "Id").
	Project("name", "Name").
	Project("filename", "Filename").
	Project("content_type", "ContentType").
	Project("size_bytes", "SizeBytes").
	Project("page_count", "PageCount").
	Project("storage_key", "StorageKey").
	Project("template_id", "TemplateId").
	Project("status", "Status").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

const defaultSort = "CreatedAt"

func scanDocument(s repository.Scanner) (Document, error) {
	var d Document
	err := s.Scan(
		&d.ID,
		&d.Name,
		&d.Filename,
		&d.ContentType,
		&d.SizeBytes,
		&d.PageCount,
		&d.StorageKey,
		&d.TemplateID,
		&d.Status,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}

// Filters contains optional criteria for filtering document queries.
type Filters struct {
	Name       *string
	Status     *string
	TemplateID *string
}

// FiltersFromQuery extracts document filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if n := values.Get("name"); n != "" {
		f.Name = &n
	}

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if t := values.Get("template_id"); t != "" {
		f.TemplateID = &t
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereContains("Name", f.Name)

	if f.Status != nil {
		b.WhereEquals("Status", *f.Status)
	}
	if f.TemplateID != nil {
		b.WhereEquals("TemplateId", *f.TemplateID)
	}

	return b
}
