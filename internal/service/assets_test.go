package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAssetVerifierResolve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("Expected HEAD, got %s", r.Method)
		}
		switch r.URL.Path {
		case "/ok.jpg":
			w.Header().Set("Content-Type", "image/jpeg")
		case "/untyped":
		case "/page":
			w.Header().Set("Content-Type", "text/html")
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	v := NewAssetVerifier()
	ctx := context.Background()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"image loads", server.URL + "/ok.jpg", server.URL + "/ok.jpg"},
		{"missing content type is accepted", server.URL + "/untyped", server.URL + "/untyped"},
		{"not an image", server.URL + "/page", "fallback.jpg"},
		{"not found", server.URL + "/gone.jpg", "fallback.jpg"},
		{"empty url", "", "fallback.jpg"},
		{"bad url", "://nope", "fallback.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Resolve(ctx, tt.url, "fallback.jpg"); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAssetVerifierUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL + "/img.jpg"
	server.Close()

	if got := NewAssetVerifier().Resolve(context.Background(), url, "fallback.jpg"); got != "fallback.jpg" {
		t.Errorf("Expected fallback, got %q", got)
	}
}
