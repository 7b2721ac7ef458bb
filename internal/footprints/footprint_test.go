package footprints

import (
	"net/http/httptest"
	"testing"
)

func TestCaptureContext_FullRequest(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/documents/abc/sign?source=email", nil)
	req.RemoteAddr = "203.0.113.10:51234"
	req.Header.Set("X-Forwarded-For", "198.51.100.7")
	req.Header.Set("X-Real-Ip", "198.51.100.7")
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Referer", "https://app.example.com/sign")
	req.Header.Set("Accept-Language", "en-US")

	ctx := CaptureContext(req)

	if ctx.IPAddress != "203.0.113.10" {
		t.Errorf("IPAddress = %q, want %q", ctx.IPAddress, "203.0.113.10")
	}

	if ctx.ForwardedIP == nil || *ctx.ForwardedIP != "198.51.100.7" {
		t.Errorf("ForwardedIP = %v, want 198.51.100.7", ctx.ForwardedIP)
	}

	if ctx.UserAgent == nil || *ctx.UserAgent != "Mozilla/5.0" {
		t.Errorf("UserAgent = %v, want Mozilla/5.0", ctx.UserAgent)
	}

	if ctx.Headers.Referer == nil || *ctx.Headers.Referer != "https://app.example.com/sign" {
		t.Errorf("Referer = %v, want referer value", ctx.Headers.Referer)
	}

	if ctx.RequestInfo.Method != "POST" {
		t.Errorf("Method = %q, want POST", ctx.RequestInfo.Method)
	}

	if ctx.RequestInfo.URL != "/api/documents/abc/sign?source=email" {
		t.Errorf("URL = %q, want full path with query", ctx.RequestInfo.URL)
	}

	if ctx.RequestInfo.Secure {
		t.Error("Secure = true for plain request, want false")
	}
}

func TestCaptureContext_AbsentHeadersStayNil(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/documents/abc/sign", nil)
	req.Header.Del("User-Agent")

	ctx := CaptureContext(req)

	if ctx.ForwardedIP != nil {
		t.Errorf("ForwardedIP = %v for absent header, want nil", ctx.ForwardedIP)
	}
	if ctx.RealIP != nil {
		t.Errorf("RealIP = %v for absent header, want nil", ctx.RealIP)
	}
	if ctx.UserAgent != nil {
		t.Errorf("UserAgent = %v for absent header, want nil", ctx.UserAgent)
	}
	if ctx.Headers.Referer != nil {
		t.Errorf("Referer = %v for absent header, want nil", ctx.Headers.Referer)
	}
	if ctx.Headers.CacheControl != nil {
		t.Errorf("CacheControl = %v for absent header, want nil", ctx.Headers.CacheControl)
	}
}

func TestCaptureContext_EmptyHeaderRecordedAsEmpty(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/documents/abc/sign", nil)
	req.Header.Set("Origin", "")

	ctx := CaptureContext(req)

	if ctx.Headers.Origin == nil {
		t.Fatal("Origin = nil for explicitly empty header, want empty string")
	}
	if *ctx.Headers.Origin != "" {
		t.Errorf("Origin = %q, want empty string", *ctx.Headers.Origin)
	}
}

func TestRemoteIP(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want string
	}{
		{"host and port", "203.0.113.10:51234", "203.0.113.10"},
		{"no port", "203.0.113.10", "203.0.113.10"},
		{"ipv6 with port", "[2001:db8::1]:51234", "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.addr

			ctx := CaptureContext(req)
			if ctx.IPAddress != tt.want {
				t.Errorf("IPAddress = %q, want %q", ctx.IPAddress, tt.want)
			}
		})
	}
}
