// Package footprints records the evidentiary trail behind every signing
// action. A footprint captures who acted, from where, and with what request
// context; rows are append-only and provenance is never patched after the
// fact. Signing is only valid once its footprint is durably recorded, so
// insertion happens inside the signing transaction.
package footprints

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Action distinguishes what kind of signing event a footprint evidences.
type Action string

// Recorded actions.
const (
	ActionSigned Action = "signed"
	ActionReset  Action = "reset"
)

// Footprint is the immutable evidentiary record of one signing action.
type Footprint struct {
	ID          uuid.UUID   `json:"id"`
	DocumentID  uuid.UUID   `json:"document_id"`
	ContactID   uuid.UUID   `json:"contact_id"`
	Action      Action      `json:"action"`
	IPAddress   string      `json:"ip_address"`
	ForwardedIP *string     `json:"forwarded_ip,omitempty"`
	RealIP      *string     `json:"real_ip,omitempty"`
	UserAgent   *string     `json:"user_agent,omitempty"`
	Headers     Headers     `json:"headers"`
	RequestInfo RequestInfo `json:"request_info"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Headers holds the request headers captured as evidence. Absent headers
// stay nil; an empty string means the header was sent empty.
type Headers struct {
	Referer        *string `json:"referer,omitempty"`
	Origin         *string `json:"origin,omitempty"`
	AcceptLanguage *string `json:"accept_language,omitempty"`
	AcceptEncoding *string `json:"accept_encoding,omitempty"`
	Accept         *string `json:"accept,omitempty"`
	Host           *string `json:"host,omitempty"`
	Connection     *string `json:"connection,omitempty"`
	CacheControl   *string `json:"cache_control,omitempty"`
}

// RequestInfo holds the structural request attributes captured as evidence.
type RequestInfo struct {
	Method   string `json:"method"`
	URL      string `json:"url"`
	Protocol string `json:"protocol"`
	Secure   bool   `json:"secure"`
}

// Context is the captured network provenance for a single signing call,
// taken from the inbound request before any processing.
type Context struct {
	IPAddress   string
	ForwardedIP *string
	RealIP      *string
	UserAgent   *string
	Headers     Headers
	RequestInfo RequestInfo
}

// CaptureContext extracts the signing provenance from an HTTP request.
// Values are recorded as-seen; missing headers are kept absent rather than
// stored as empty strings.
func CaptureContext(r *http.Request) Context {
	return Context{
		IPAddress:   remoteIP(r),
		ForwardedIP: headerValue(r, "X-Forwarded-For"),
		RealIP:      headerValue(r, "X-Real-Ip"),
		UserAgent:   headerValue(r, "User-Agent"),
		Headers: Headers{
			Referer:        headerValue(r, "Referer"),
			Origin:         headerValue(r, "Origin"),
			AcceptLanguage: headerValue(r, "Accept-Language"),
			AcceptEncoding: headerValue(r, "Accept-Encoding"),
			Accept:         headerValue(r, "Accept"),
			Host:           hostValue(r),
			Connection:     headerValue(r, "Connection"),
			CacheControl:   headerValue(r, "Cache-Control"),
		},
		RequestInfo: RequestInfo{
			Method:   r.Method,
			URL:      r.URL.String(),
			Protocol: r.Proto,
			Secure:   r.TLS != nil,
		},
	}
}

func remoteIP(r *http.Request) string {
	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx > 0 && !strings.HasSuffix(addr, "]") {
		return strings.Trim(addr[:idx], "[]")
	}
	return addr
}

func headerValue(r *http.Request, name string) *string {
	values, ok := r.Header[http.CanonicalHeaderKey(name)]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}

func hostValue(r *http.Request) *string {
	if r.Host == "" {
		return nil
	}
	h := r.Host
	return &h
}
