package fields

import "fmt"

// Spec describes a field to be placed: its kind, label, geometry, and
// kind-specific metadata. It is the unit both the authoring session and
// the definition/instance stores accept.
type Spec struct {
	Kind        Kind     `json:"kind"`
	Name        string   `json:"name"`
	Placeholder string   `json:"placeholder,omitempty"`
	Geometry    Geometry `json:"geometry"`
	Required    bool     `json:"required"`
	Metadata    Metadata `json:"metadata,omitempty"`
}

// Validate checks the spec's kind, name, geometry, and metadata.
func (s Spec) Validate() error {
	if err := s.Kind.Validate(); err != nil {
		return err
	}
	if s.Name == "" {
		return fmt.Errorf("field name required")
	}
	if err := s.Geometry.Validate(); err != nil {
		return fmt.Errorf("field %q: %w", s.Name, err)
	}
	if err := s.Metadata.Validate(s.Kind); err != nil {
		return fmt.Errorf("field %q: %w", s.Name, err)
	}
	return nil
}
