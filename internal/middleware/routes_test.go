package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestKnownRoutes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/folder", func(w http.ResponseWriter, r *http.Request) {})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {})

	tests := []struct {
		name     string
		method   string
		path     string
		fallback bool
	}{
		{"registered route", http.MethodGet, "/api/folder", false},
		{"unknown path", http.MethodGet, "/api/nothing", true},
		{"method mismatch", http.MethodDelete, "/api/folder", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var nextRan, fallbackRan bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextRan = true })
			fallback := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { fallbackRan = true })

			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			KnownRoutes(mux, fallback)(next).ServeHTTP(rec, req)

			if fallbackRan != tt.fallback {
				t.Fatalf("fallback ran = %v, want %v", fallbackRan, tt.fallback)
			}
			if nextRan == tt.fallback {
				t.Fatalf("next ran = %v, want %v", nextRan, !tt.fallback)
			}
		})
	}
}
