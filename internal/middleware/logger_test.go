package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Lixing-Zhang/kart-challenge/product-edge/pkg/logger"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLevel string
	}{
		{"ok", http.StatusOK, "[]", "INFO"},
		{"not found", http.StatusNotFound, "Product Not Found", "INFO"},
		{"server error", http.StatusInternalServerError, "Internal Server Error", "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := logger.NewWithWriter("info", &buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			handler := chimiddleware.RequestID(Logger(log)(next))

			req := httptest.NewRequest(http.MethodGet, "/product", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
			}

			if entry["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %s", entry["level"], tt.wantLevel)
			}
			if entry["status"] != float64(tt.status) {
				t.Errorf("status = %v, want %d", entry["status"], tt.status)
			}
			if entry["bytes"] != float64(len(tt.body)) {
				t.Errorf("bytes = %v, want %d", entry["bytes"], len(tt.body))
			}
			if entry["path"] != "/product" {
				t.Errorf("path = %v", entry["path"])
			}
			if id, _ := entry["request_id"].(string); id == "" {
				t.Error("expected request_id to be logged")
			}
		})
	}
}
