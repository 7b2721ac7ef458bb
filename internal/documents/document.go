// Package documents provides document upload, storage, and lifecycle
// management. A document optionally originates from a template, in which
// case its fields are snapshotted from the template's definitions at
// creation. Status moves draft -> sent -> completed; the completed
// transition is driven by observing the signing engine's results, never by
// the engine itself.
package documents

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle stage of a document.
type Status string

// Document lifecycle stages.
const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusCompleted Status = "completed"
)

// Validate checks that the status is a recognized lifecycle stage.
func (s Status) Validate() error {
	switch s {
	case StatusDraft, StatusSent, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("unknown document status: %q", string(s))
	}
}

// Document represents a stored document with metadata and lifecycle state.
type Document struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Filename    string     `json:"filename"`
	ContentType string     `json:"content_type"`
	SizeBytes   int64      `json:"size_bytes"`
	PageCount   *int       `json:"page_count,omitempty"`
	StorageKey  string     `json:"storage_key"`
	TemplateID  *uuid.UUID `json:"template_id,omitempty"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateCommand contains the data required to create a new document.
// Data holds the raw file bytes to be stored. When TemplateID is set, the
// template's field definitions are snapshotted onto the document.
type CreateCommand struct {
	Name        string
	Filename    string
	ContentType string
	SizeBytes   int64
	PageCount   *int
	TemplateID  *uuid.UUID
	Data        []byte
}

// UpdateCommand contains the fields that can be modified on an existing
// document. Only the display name can be changed; the stored file is
// immutable.
type UpdateCommand struct {
	Name string `json:"name"`
}
