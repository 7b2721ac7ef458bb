package documents

import (
	"context"

	"github.com/google/uuid"

	"github.com/fieldsign/fieldsign/pkg/pagination"
)

// System defines the document lifecycle operations. It collaborates with
// the template store (field snapshots at creation) and the signing engine
// (completion-driven status transitions).
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Document], error)
	Find(ctx context.Context, id uuid.UUID) (*Document, error)
	Create(ctx context.Context, cmd CreateCommand) (*Document, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Document, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// MarkSent moves a draft document to sent once its layout is final.
	MarkSent(ctx context.Context, id uuid.UUID) (*Document, error)

	// SyncStatus re-derives the document's completion from field state and
	// moves status between sent and completed accordingly.
	SyncStatus(ctx context.Context, id uuid.UUID) (*Document, error)

	// ObserveSigning implements the signing engine's status observer.
	ObserveSigning(ctx context.Context, documentID uuid.UUID)
}
