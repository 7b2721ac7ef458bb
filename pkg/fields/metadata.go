package fields

import "fmt"

// Metadata carries kind-specific field options. Typed options cover the
// known kinds; Extra remains for genuinely extensible keys with scalar
// values (string, number, or boolean).
type Metadata struct {
	// DateFormat is the display/parse layout for date fields, e.g. "2006-01-02".
	DateFormat *string `json:"date_format,omitempty"`

	// MaxLength caps the accepted value length for text fields.
	MaxLength *int `json:"max_length,omitempty"`

	// CheckedValue is the value recorded when a checkbox field is checked.
	// Defaults to "true" when unset.
	CheckedValue *string `json:"checked_value,omitempty"`

	// Extra holds open-ended scalar metadata not covered by typed options.
	Extra map[string]any `json:"extra,omitempty"`
}

// Validate checks that the metadata options are consistent with the field kind
// and that extra values are scalars.
func (m Metadata) Validate(kind Kind) error {
	if m.DateFormat != nil && kind != KindDate {
		return fmt.Errorf("date_format is only valid for date fields, got kind %q", kind)
	}
	if m.MaxLength != nil {
		if kind != KindText {
			return fmt.Errorf("max_length is only valid for text fields, got kind %q", kind)
		}
		if *m.MaxLength < 1 {
			return fmt.Errorf("max_length must be positive, got %d", *m.MaxLength)
		}
	}
	if m.CheckedValue != nil && kind != KindCheckbox {
		return fmt.Errorf("checked_value is only valid for checkbox fields, got kind %q", kind)
	}

	for key, value := range m.Extra {
		switch value.(type) {
		case string, bool, int, int64, float64:
		default:
			return fmt.Errorf("extra metadata %q must be a scalar value", key)
		}
	}

	return nil
}
