package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func containsHeader(headerValue, target string) bool {
	for part := range strings.SplitSeq(headerValue, ",") {
		if strings.EqualFold(strings.TrimSpace(part), target) {
			return true
		}
	}
	return false
}

func TestCORSAllowsGETOrigin(t *testing.T) {
	called := false
	h := CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "http://localhost/", nil)
	req.Header.Set("Origin", "http://example.com")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if !called {
		t.Fatal("expected downstream handler to be called for GET request")
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected Access-Control-Allow-Origin '*', got %q", got)
	}
	if exposed := resp.Header().Get("Access-Control-Expose-Headers"); !containsHeader(exposed, "X-Request-Id") {
		t.Fatalf("expected X-Request-Id to be exposed, got %q", exposed)
	}
}

func TestCORSHandlesPreflightWithoutCallingNext(t *testing.T) {
	called := false
	h := CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "http://localhost/", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if called {
		t.Fatal("expected preflight to be answered by the CORS middleware")
	}
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for preflight, got %d", resp.Code)
	}
	if methods := resp.Header().Get("Access-Control-Allow-Methods"); !containsHeader(methods, http.MethodGet) {
		t.Fatalf("expected GET in Access-Control-Allow-Methods, got %q", methods)
	}
}

func TestCORSRejectsUnsafePreflightMethod(t *testing.T) {
	h := CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodOptions, "http://localhost/", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no Access-Control-Allow-Origin for DELETE preflight, got %q", got)
	}
}
