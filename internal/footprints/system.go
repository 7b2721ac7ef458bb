package footprints

import (
	"context"

	"github.com/google/uuid"

	"github.com/fieldsign/fieldsign/pkg/pagination"
	"github.com/fieldsign/fieldsign/pkg/repository"
)

// System defines footprint recording and retrieval. Recording is pure
// append; no update or delete path exists for provenance fields.
type System interface {
	// RecordTx inserts a footprint using the caller's transaction, so the
	// caller can make the footprint a precondition of the action it
	// evidences.
	RecordTx(ctx context.Context, q repository.Queryer, documentID, contactID uuid.UUID, action Action, reqCtx Context) (*Footprint, error)
	Record(ctx context.Context, documentID, contactID uuid.UUID, action Action, reqCtx Context) (*Footprint, error)
	ListForDocument(ctx context.Context, documentID uuid.UUID, page pagination.PageRequest) (*pagination.PageResult[Footprint], error)
	Find(ctx context.Context, id uuid.UUID) (*Footprint, error)
}
