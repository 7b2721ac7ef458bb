package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/fieldsign/fieldsign/internal/docfields"
	"github.com/fieldsign/fieldsign/pkg/fields"
	"github.com/fieldsign/fieldsign/pkg/pagination"
)

type stubSystem struct {
	System
	doc *Document
	err error
}

func (s *stubSystem) Find(ctx context.Context, id uuid.UUID) (*Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.doc, nil
}

type stubFieldStore struct {
	docfields.System
	createCalls int
	removeCalls int
}

func (s *stubFieldStore) CreateAdHoc(ctx context.Context, documentID uuid.UUID, specs []fields.Spec) ([]docfields.Field, error) {
	s.createCalls++
	created := make([]docfields.Field, len(specs))
	for i, spec := range specs {
		created[i] = docfields.Field{ID: uuid.New(), DocumentID: documentID, Position: i, Spec: spec}
	}
	return created, nil
}

func (s *stubFieldStore) RemoveAllForDocument(ctx context.Context, documentID uuid.UUID) error {
	s.removeCalls++
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func layoutRequest(t *testing.T, method string, id uuid.UUID, specs []fields.Spec) *http.Request {
	t.Helper()

	var body io.Reader
	if specs != nil {
		data, err := json.Marshal(specs)
		if err != nil {
			t.Fatalf("marshal specs: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, "/documents/"+id.String()+"/fields", body)
	req.SetPathValue("id", id.String())
	return req
}

func adHocSpecs() []fields.Spec {
	return []fields.Spec{{
		Kind: fields.KindText,
		Name: "full_name",
		Geometry: fields.Geometry{
			Page:   1,
			X:      0.1,
			Y:      0.2,
			Width:  0.3,
			Height: 0.05,
		},
		Required: true,
	}}
}

func TestHandler_CreateFields_StatusGuard(t *testing.T) {
	tests := []struct {
		name       string
		status     Status
		wantStatus int
		wantCalls  int
	}{
		{"Draft", StatusDraft, http.StatusCreated, 1},
		{"Sent", StatusSent, http.StatusConflict, 0},
		{"Completed", StatusCompleted, http.StatusConflict, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			sys := &stubSystem{doc: &Document{ID: id, Status: tt.status}}
			store := &stubFieldStore{}
			h := NewHandler(sys, store, nil, testLogger(), pagination.Config{}, 0)

			w := httptest.NewRecorder()
			h.CreateFields(w, layoutRequest(t, http.MethodPost, id, adHocSpecs()))

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if store.createCalls != tt.wantCalls {
				t.Errorf("CreateAdHoc calls = %d, want %d", store.createCalls, tt.wantCalls)
			}
		})
	}
}

func TestHandler_RemoveFields_StatusGuard(t *testing.T) {
	tests := []struct {
		name       string
		status     Status
		wantStatus int
		wantCalls  int
	}{
		{"Draft", StatusDraft, http.StatusNoContent, 1},
		{"Sent", StatusSent, http.StatusConflict, 0},
		{"Completed", StatusCompleted, http.StatusConflict, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			sys := &stubSystem{doc: &Document{ID: id, Status: tt.status}}
			store := &stubFieldStore{}
			h := NewHandler(sys, store, nil, testLogger(), pagination.Config{}, 0)

			w := httptest.NewRecorder()
			h.RemoveFields(w, layoutRequest(t, http.MethodDelete, id, nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if store.removeCalls != tt.wantCalls {
				t.Errorf("RemoveAllForDocument calls = %d, want %d", store.removeCalls, tt.wantCalls)
			}
		})
	}
}

func TestHandler_CreateFields_NotFound(t *testing.T) {
	id := uuid.New()
	sys := &stubSystem{err: ErrNotFound}
	store := &stubFieldStore{}
	h := NewHandler(sys, store, nil, testLogger(), pagination.Config{}, 0)

	w := httptest.NewRecorder()
	h.CreateFields(w, layoutRequest(t, http.MethodPost, id, adHocSpecs()))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if store.createCalls != 0 {
		t.Errorf("CreateAdHoc calls = %d, want 0", store.createCalls)
	}
}
