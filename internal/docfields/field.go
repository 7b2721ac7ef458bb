// Package docfields provides the per-document field instances that signers
// fill and sign. Each field is a snapshot of a template definition (or an ad
// hoc placement) taken at document creation time; later template edits never
// move fields on existing documents.
package docfields

import (
	"time"

	"github.com/google/uuid"

	"github.com/fieldsign/fieldsign/pkg/fields"
)

// Field represents a fillable field instance on a document.
type Field struct {
	ID              uuid.UUID  `json:"id"`
	DocumentID      uuid.UUID  `json:"document_id"`
	TemplateFieldID *uuid.UUID `json:"template_field_id,omitempty"`
	Position        int        `json:"position"`
	fields.Spec
	ContactID *uuid.UUID `json:"contact_id,omitempty"`
	Value     *string    `json:"value,omitempty"`
	FileKey   *string    `json:"file_key,omitempty"`
	Signed    bool       `json:"signed"`
	SignedAt  *time.Time `json:"signed_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Snapshot is the unit of template instantiation: a field spec plus the
// definition it was copied from. Instantiation persists the spec values,
// not a reference, so the copy stays independent of the definition.
type Snapshot struct {
	TemplateFieldID *uuid.UUID
	Spec            fields.Spec
}

// AssignCommand binds a signer contact to a field.
type AssignCommand struct {
	ContactID uuid.UUID `json:"contact_id"`
}

// ValueCommand sets or clears a field's value prior to signing.
type ValueCommand struct {
	Value *string `json:"value"`
}
