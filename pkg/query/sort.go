package query

import "strings"

// SortField identifies a view-level field and sort direction.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending,omitempty"`
}

// ParseSortFields parses a comma-separated sort expression into sort fields.
// A "-" prefix marks a field as descending, e.g. "name,-created_at".
func ParseSortFields(expr string) []SortField {
	if expr == "" {
		return nil
	}

	var fields []SortField
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if strings.HasPrefix(part, "-") {
			fields = append(fields, SortField{Field: part[1:], Descending: true})
		} else {
			fields = append(fields, SortField{Field: part})
		}
	}
	return fields
}
