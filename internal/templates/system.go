package templates

import (
	"context"

	"github.com/google/uuid"

	"github.com/fieldsign/fieldsign/pkg/fields"
	"github.com/fieldsign/fieldsign/pkg/pagination"
)

// System defines template and field definition operations.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Template], error)
	Find(ctx context.Context, id uuid.UUID) (*Template, error)
	Create(ctx context.Context, cmd CreateCommand) (*Template, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Template, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ListFields(ctx context.Context, templateID uuid.UUID) ([]Field, error)
	CreateField(ctx context.Context, templateID uuid.UUID, spec fields.Spec) (*Field, error)
	UpdateField(ctx context.Context, id uuid.UUID, patch FieldPatch) (*Field, error)
	DeleteField(ctx context.Context, id uuid.UUID) error
	ReplaceFields(ctx context.Context, templateID uuid.UUID, specs []fields.Spec) ([]Field, error)
}
