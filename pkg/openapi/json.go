package openapi

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON serializes a specification with stable, human-readable formatting.
func MarshalJSON(spec *Spec) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(spec); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
