package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		wantCode    int
		wantAllowed string
	}{
		{name: "configured origin", allowed: []string{"https://roster.example.com"}, method: http.MethodGet, origin: "https://roster.example.com", wantCode: http.StatusOK, wantAllowed: "https://roster.example.com"},
		{name: "wildcard preflight", allowed: []string{"*"}, method: http.MethodOptions, origin: "https://roster.example.com", wantCode: http.StatusNoContent, wantAllowed: "*"},
		{name: "unconfigured origin", allowed: []string{"https://allowed.example.com"}, method: http.MethodDelete, origin: "https://other.example.com", wantCode: http.StatusOK},
		{name: "no origin header", allowed: []string{"*"}, method: http.MethodPost, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/groups", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			CORS(tt.allowed, next).ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, rec.Code)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllowed {
				t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
			}
		})
	}
}
