// Package templates provides reusable document templates and the field
// definitions placed on them. Template fields are the authoritative shapes
// that get snapshotted onto documents at instantiation time; editing or
// deleting a definition never touches fields already copied to a document.
package templates

import (
	"time"

	"github.com/google/uuid"

	"github.com/fieldsign/fieldsign/pkg/fields"
)

// Template represents a reusable document layout that fields are defined on.
type Template struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Field represents a field definition owned by a template.
type Field struct {
	ID         uuid.UUID `json:"id"`
	TemplateID uuid.UUID `json:"template_id"`
	Position   int       `json:"position"`
	fields.Spec
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCommand contains the data required to create a template.
type CreateCommand struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateCommand contains the fields that can be modified on a template.
type UpdateCommand struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FieldPatch contains the optional changes applicable to a field definition.
// Nil members leave the corresponding attribute untouched; the patched
// definition is re-validated as a whole before persisting.
type FieldPatch struct {
	Name        *string          `json:"name,omitempty"`
	Placeholder *string          `json:"placeholder,omitempty"`
	Geometry    *fields.Geometry `json:"geometry,omitempty"`
	Required    *bool            `json:"required,omitempty"`
	Metadata    *fields.Metadata `json:"metadata,omitempty"`
}

func (p FieldPatch) apply(f Field) Field {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Placeholder != nil {
		f.Placeholder = *p.Placeholder
	}
	if p.Geometry != nil {
		f.Geometry = *p.Geometry
	}
	if p.Required != nil {
		f.Required = *p.Required
	}
	if p.Metadata != nil {
		f.Metadata = *p.Metadata
	}
	return f
}
