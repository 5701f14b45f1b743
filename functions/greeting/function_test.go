package greeting

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandler(t *testing.T) {
	name, empty := "demo", ""
	tests := []struct {
		name    string
		appName *string
		want    string
	}{
		{"set", &name, "This is demo."},
		{"unset", nil, "This is None."},
		{"set but empty", &empty, "This is ."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := httptest.NewRecorder()
			newHandler(tt.appName).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

			if resp.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", resp.Code)
			}
			if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
				t.Fatalf("expected application/json, got %q", ct)
			}
			var got Response
			if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Message != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got.Message)
			}
		})
	}
}

func TestHandlerRejectsOtherMethods(t *testing.T) {
	resp := httptest.NewRecorder()
	newHandler(nil).ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/", nil))

	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.Code)
	}
	if allow := resp.Header().Get("Allow"); allow != http.MethodGet {
		t.Fatalf("expected Allow: GET, got %q", allow)
	}
}
