package fields

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Value serializes metadata to JSON for storage in a jsonb column.
func (m Metadata) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan deserializes metadata from a jsonb column.
func (m *Metadata) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = Metadata{}
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("cannot scan %T into fields.Metadata", src)
	}
}
