package signing

import (
	"context"

	"github.com/google/uuid"

	"github.com/fieldsign/fieldsign/internal/footprints"
)

// System defines the signing state engine operations.
type System interface {
	// BatchSign signs every unsigned field on the document assigned to the
	// contact that has its input present, atomically with one footprint.
	// An empty candidate set succeeds with a zero count and no footprint.
	BatchSign(ctx context.Context, documentID, contactID uuid.UUID, reqCtx footprints.Context) (*BatchResult, error)

	// ResetField returns a signed field to the assigned state and records
	// a reset footprint in the same transaction. It reports the owning
	// document so callers can re-derive completion.
	ResetField(ctx context.Context, fieldID uuid.UUID, reqCtx footprints.Context) (uuid.UUID, error)

	// IsDocumentComplete reports whether every required field on the
	// document is signed. Derived at read time, never stored.
	IsDocumentComplete(ctx context.Context, documentID uuid.UUID) (bool, error)
}

// StatusObserver is notified after signing activity changes field state on a
// document, so an external collaborator can move the document's status. The
// engine itself never mutates document status.
type StatusObserver interface {
	ObserveSigning(ctx context.Context, documentID uuid.UUID)
}
