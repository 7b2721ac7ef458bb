// Package fields defines the field primitives shared by template
// definitions, document field instances, and authoring sessions: the field
// kind taxonomy, normalized canvas geometry, and kind-specific metadata.
package fields

import "fmt"

// Kind identifies the input behavior of a placed field.
type Kind string

// Recognized field kinds.
const (
	KindSignature Kind = "signature"
	KindText      Kind = "text"
	KindCheckbox  Kind = "checkbox"
	KindDate      Kind = "date"
)

// Validate checks that the kind is one of the recognized field kinds.
func (k Kind) Validate() error {
	switch k {
	case KindSignature, KindText, KindCheckbox, KindDate:
		return nil
	default:
		return fmt.Errorf("unknown field kind: %q", string(k))
	}
}
