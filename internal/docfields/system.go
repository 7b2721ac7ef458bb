package docfields

import (
	"context"

	"github.com/google/uuid"

	"github.com/fieldsign/fieldsign/pkg/fields"
)

// System defines document field instance operations. Signing-state
// transitions are owned by the signing engine; this store only mutates
// fields that have not been signed yet.
type System interface {
	ListForDocument(ctx context.Context, documentID uuid.UUID) ([]Field, error)
	Find(ctx context.Context, id uuid.UUID) (*Field, error)
	InstantiateFromTemplate(ctx context.Context, documentID uuid.UUID, snapshots []Snapshot) ([]Field, error)
	CreateAdHoc(ctx context.Context, documentID uuid.UUID, specs []fields.Spec) ([]Field, error)
	AssignSigner(ctx context.Context, id uuid.UUID, contactID uuid.UUID) (*Field, error)
	SetValue(ctx context.Context, id uuid.UUID, value *string) (*Field, error)
	SetFile(ctx context.Context, id uuid.UUID, data []byte, filename string) (*Field, error)
	RemoveAllForDocument(ctx context.Context, documentID uuid.UUID) error
}
