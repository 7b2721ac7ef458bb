package docfields

import (
	"github.com/fieldsign/fieldsign/pkg/query"
	"github.com/fieldsign/fieldsign/pkg/repository"
)

var projection = query.NewProjectionMap("public", "document_fields", "df").
	Project("id", "Id").
	Project("document_id", "DocumentId").
	Project("template_field_id", "TemplateFieldId").
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
	Project("contact_id", "ContactId").
	Project("value", "Value").
	Project("file_key", "FileKey").
	Project("signed", "Signed").
	Project("signed_at", "SignedAt").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

const defaultSort = "CreatedAt"

func scanField(s repository.Scanner) (Field, error) {
	var f Field
	err := s.Scan(
		&f.ID,
		&f.DocumentID,
		&f.TemplateFieldID,
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
		&f.ContactID,
		&f.Value,
		&f.FileKey,
		&f.Signed,
		&f.SignedAt,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	return f, err
}
