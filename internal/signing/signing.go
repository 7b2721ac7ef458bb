// Package signing enforces the unsigned-to-signed transition on document
// fields and the aggregate completion rule per document. Batch sign is the
// single entry point for signing: it locks the caller's unsigned fields,
// validates their inputs, marks them signed, and records the audit footprint
// in one transaction. No other component may set a field signed.
package signing

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/fieldsign/fieldsign/pkg/fields"
)

// BatchResult reports the outcome of a batch-sign call. A zero count with
// success is the idempotent no-op path: every matching field was already
// signed (or nothing matched), and no new footprint was recorded.
type BatchResult struct {
	Success           bool `json:"success"`
	SignedFieldsCount int  `json:"signed_fields_count"`
}

// BatchSignCommand identifies the signer for a batch-sign call. Request
// provenance is captured server-side, not taken from the body.
type BatchSignCommand struct {
	ContactID uuid.UUID `json:"contact_id"`
}

// CompletionResult reports the derived completion state of a document.
type CompletionResult struct {
	DocumentID uuid.UUID `json:"document_id"`
	Complete   bool      `json:"complete"`
}

// candidate is a field eligible for signing: unsigned and assigned to the
// calling contact, with just the attributes the transition rules need.
type candidate struct {
	ID       uuid.UUID
	Kind     fields.Kind
	Name     string
	Required bool
	HasValue bool
	HasFile  bool
}

// fillable reports whether the candidate has the input its kind needs:
// a value, or a stored signature asset for signature fields.
func (c candidate) fillable() bool {
	if c.HasValue {
		return true
	}
	return c.Kind == fields.KindSignature && c.HasFile
}

// plan selects which candidates to sign, preserving candidate order.
// A required field without input aborts the whole batch; optional fields
// without input are skipped silently.
func plan(candidates []candidate) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(candidates))
	for _, c := range candidates {
		if c.fillable() {
			ids = append(ids, c.ID)
			continue
		}
		if c.Required {
			return nil, fmt.Errorf("field %q (%s): %w", c.Name, c.ID, ErrMissingValue)
		}
	}
	return ids, nil
}
