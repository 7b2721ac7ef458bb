package footprints

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/fieldsign/fieldsign/pkg/query"
	"github.com/fieldsign/fieldsign/pkg/repository"
)

var projection = query.NewProjectionMap("public", "signature_footprints", "sf").
	Project("id", "Id").
	Project("document_id", "DocumentId").
	Project("contact_id", "ContactId").
	Project("action", "Action").
	Project("ip_address", "IpAddress").
	Project("forwarded_ip", "ForwardedIp").
	Project("real_ip", "RealIp").
	Project("user_agent", "UserAgent").
	Project("headers", "Headers").
	Project("request_info", "RequestInfo").
	Project("created_at", "CreatedAt")

const defaultSort = "CreatedAt"

func scanFootprint(s repository.Scanner) (Footprint, error) {
	var f Footprint
	err := s.Scan(
		&f.ID,
		&f.DocumentID,
		&f.ContactID,
		&f.Action,
		&f.IPAddress,
		&f.ForwardedIP,
		&f.RealIP,
		&f.UserAgent,
		&f.Headers,
		&f.RequestInfo,
		&f.CreatedAt,
	)
	return f, err
}

// Value serializes captured headers to JSON for storage in a jsonb column.
func (h Headers) Value() (driver.Value, error) {
	return json.Marshal(h)
}

// Scan deserializes captured headers from a jsonb column.
func (h *Headers) Scan(src any) error {
	return scanJSON(src, h, "footprints.Headers")
}

// Value serializes request info to JSON for storage in a jsonb column.
func (i RequestInfo) Value() (driver.Value, error) {
	return json.Marshal(i)
}

// Scan deserializes request info from a jsonb column.
func (i *RequestInfo) Scan(src any) error {
	return scanJSON(src, i, "footprints.RequestInfo")
}

func scanJSON(src, dest any, kind string) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("cannot scan %T into %s", src, kind)
	}
}
