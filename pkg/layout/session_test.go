package layout_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/fieldsign/fieldsign/pkg/fields"
	"github.com/fieldsign/fieldsign/pkg/layout"
)

func signatureSpec(name string) fields.Spec {
	return fields.Spec{
		Kind: fields.KindSignature,
		Name: name,
		Geometry: fields.Geometry{
			Page:   1,
			X:      0.1,
			Y:      0.7,
			Width:  0.3,
			Height: 0.06,
		},
		Required: true,
	}
}

func TestSession_AddField(t *testing.T) {
	session := layout.NewSession(layout.ModeTemplate)

	id, err := session.AddField(signatureSpec("applicant_signature"))
	if err != nil {
		t.Fatalf("AddField() failed: %v", err)
	}

	if id == uuid.Nil {
		t.Error("AddField() returned nil id")
	}

	if session.Len() != 1 {
		t.Errorf("Len() = %d, want 1", session.Len())
	}
}

func TestSession_AddField_InvalidRejected(t *testing.T) {
	session := layout.NewSession(layout.ModeTemplate)

	spec := signatureSpec("bad_field")
	spec.Geometry.Width = 0

	if _, err := session.AddField(spec); err == nil {
		t.Error("AddField() succeeded with invalid geometry, want error")
	}

	if session.Len() != 0 {
		t.Errorf("Len() = %d after rejected add, want 0", session.Len())
	}
}

func TestSession_UpdateField(t *testing.T) {
	session := layout.NewSession(layout.ModeDocument)
	id, _ := session.AddField(signatureSpec("applicant_signature"))

	newName := "witness_signature"
	updated, err := session.UpdateField(id, layout.Patch{Name: &newName})
	if err != nil {
		t.Fatalf("UpdateField() failed: %v", err)
	}

	if updated.Name != "witness_signature" {
		t.Errorf("Name = %q, want %q", updated.Name, "witness_signature")
	}

	if updated.Required != true {
		t.Error("Required changed by unrelated patch")
	}
}

func TestSession_UpdateField_InvalidLeavesUnchanged(t *testing.T) {
	session := layout.NewSession(layout.ModeTemplate)
	id, _ := session.AddField(signatureSpec("applicant_signature"))

	bad := fields.Geometry{Page: 1, X: 0.9, Y: 0.1, Width: 0.5, Height: 0.05}
	if _, err := session.UpdateField(id, layout.Patch{Geometry: &bad}); err == nil {
		t.Fatal("UpdateField() succeeded with out-of-bounds geometry, want error")
	}

	staged := session.Fields()
	if staged[0].Geometry.X != 0.1 {
		t.Errorf("Geometry.X = %g after failed patch, want 0.1", staged[0].Geometry.X)
	}
}

func TestSession_UpdateField_NotFound(t *testing.T) {
	session := layout.NewSession(layout.ModeTemplate)

	_, err := session.UpdateField(uuid.New(), layout.Patch{})
	if !errors.Is(err, layout.ErrFieldNotFound) {
		t.Errorf("UpdateField() error = %v, want %v", err, layout.ErrFieldNotFound)
	}
}

func TestSession_RemoveField(t *testing.T) {
	session := layout.NewSession(layout.ModeTemplate)
	id, _ := session.AddField(signatureSpec("applicant_signature"))

	if err := session.RemoveField(id); err != nil {
		t.Fatalf("RemoveField() failed: %v", err)
	}

	if session.Len() != 0 {
		t.Errorf("Len() = %d after remove, want 0", session.Len())
	}

	if err := session.RemoveField(id); !errors.Is(err, layout.ErrFieldNotFound) {
		t.Errorf("second RemoveField() error = %v, want %v", err, layout.ErrFieldNotFound)
	}
}

func TestSession_Specs_PreservesInsertionOrder(t *testing.T) {
	session := layout.NewSession(layout.ModeTemplate)

	names := []string{"first_signature", "second_signature", "third_signature"}
	for _, name := range names {
		if _, err := session.AddField(signatureSpec(name)); err != nil {
			t.Fatalf("AddField(%s) failed: %v", name, err)
		}
	}

	specs := session.Specs()
	if len(specs) != 3 {
		t.Fatalf("len(Specs()) = %d, want 3", len(specs))
	}

	for i, name := range names {
		if specs[i].Name != name {
			t.Errorf("Specs()[%d].Name = %q, want %q", i, specs[i].Name, name)
		}
	}
}

func TestSession_Fields_ReturnsCopy(t *testing.T) {
	session := layout.NewSession(layout.ModeTemplate)
	session.AddField(signatureSpec("applicant_signature"))

	staged := session.Fields()
	staged[0].Name = "mutated"

	if session.Fields()[0].Name != "applicant_signature" {
		t.Error("mutating returned slice affected session state")
	}
}

func TestSession_Reset(t *testing.T) {
	session := layout.NewSession(layout.ModeDocument)
	session.AddField(signatureSpec("applicant_signature"))
	session.AddField(signatureSpec("witness_signature"))

	session.Reset()

	if session.Len() != 0 {
		t.Errorf("Len() = %d after Reset, want 0", session.Len())
	}
}

func TestSession_TemplateMode(t *testing.T) {
	if !layout.NewSession(layout.ModeTemplate).TemplateMode() {
		t.Error("TemplateMode() = false for template session")
	}
	if layout.NewSession(layout.ModeDocument).TemplateMode() {
		t.Error("TemplateMode() = true for document session")
	}
}
