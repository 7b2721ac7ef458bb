// Package layout provides an in-memory field authoring session. A session
// accumulates local placement edits while an author arranges fields on a
// template or document, then yields the canonical field list for a single
// commit to the backing store. Each session is an independent, caller-owned
// handle; concurrent editing surfaces (multiple tabs, multiple documents)
// use separate sessions without interference.
package layout

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/fieldsign/fieldsign/pkg/fields"
)

// Mode distinguishes what the session's committed fields become:
// template field definitions or document field instances.
type Mode string

// Session modes.
const (
	ModeTemplate Mode = "template"
	ModeDocument Mode = "document"
)

// PlacedField is a field staged in a session, identified for later edits.
type PlacedField struct {
	ID uuid.UUID `json:"id"`
	fields.Spec
}

// Patch contains the optional changes applicable to a staged field.
// Nil members leave the corresponding attribute untouched.
type Patch struct {
	Name        *string          `json:"name,omitempty"`
	Placeholder *string          `json:"placeholder,omitempty"`
	Geometry    *fields.Geometry `json:"geometry,omitempty"`
	Required    *bool            `json:"required,omitempty"`
	Metadata    *fields.Metadata `json:"metadata,omitempty"`
}

// Session holds the working field list during authoring. Fields keep
// insertion order, which becomes the creation order on commit.
type Session struct {
	mu     sync.Mutex
	mode   Mode
	staged []PlacedField
}

// NewSession creates an empty authoring session for the given mode.
func NewSession(mode Mode) *Session {
	return &Session{mode: mode}
}

// TemplateMode reports whether committed fields target the template
// definition store rather than a document's field instances.
func (s *Session) TemplateMode() bool {
	return s.mode == ModeTemplate
}

// AddField validates and stages a new field, returning its session-scoped id.
func (s *Session) AddField(spec fields.Spec) (uuid.UUID, error) {
	if err := spec.Validate(); err != nil {
		return uuid.Nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	placed := PlacedField{ID: uuid.New(), Spec: spec}
	s.staged = append(s.staged, placed)
	return placed.ID, nil
}

// UpdateField applies a patch to a staged field. The patched field is
// re-validated as a whole; an invalid patch leaves the field unchanged.
func (s *Session) UpdateField(id uuid.UUID, patch Patch) (PlacedField, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return PlacedField{}, ErrFieldNotFound
	}

	updated := s.staged[idx]
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Placeholder != nil {
		updated.Placeholder = *patch.Placeholder
	}
	if patch.Geometry != nil {
		updated.Geometry = *patch.Geometry
	}
	if patch.Required != nil {
		updated.Required = *patch.Required
	}
	if patch.Metadata != nil {
		updated.Metadata = *patch.Metadata
	}

	if err := updated.Spec.Validate(); err != nil {
		return PlacedField{}, err
	}

	s.staged[idx] = updated
	return updated, nil
}

// RemoveField deletes a staged field from the session.
func (s *Session) RemoveField(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrFieldNotFound
	}

	s.staged = slices.Delete(s.staged, idx, idx+1)
	return nil
}

// Fields returns the staged fields in insertion order.
// The returned slice is a copy; mutating it does not affect the session.
func (s *Session) Fields() []PlacedField {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.staged)
}

// Specs returns the canonical field spec list for committing to a store.
func (s *Session) Specs() []fields.Spec {
	s.mu.Lock()
	defer s.mu.Unlock()

	specs := make([]fields.Spec, len(s.staged))
	for i, placed := range s.staged {
		specs[i] = placed.Spec
	}
	return specs
}

// Len returns the number of staged fields.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.staged)
}

// Reset clears all staged fields, e.g. when the author abandons the layout.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staged = nil
}

func (s *Session) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(s.staged, func(f PlacedField) bool {
		return f.ID == id
	})
}
