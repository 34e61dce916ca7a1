package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/product-edge/internal/config"
	"github.com/Lixing-Zhang/kart-challenge/product-edge/pkg/logger"
)

func TestAPIKeyAuth(t *testing.T) {
	cfg := config.AuthConfig{
		APIKeys: []string{"edge-key", "ops-key"},
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("success"))
	})

	authHandler := APIKeyAuth(cfg, logger.New("error"))(testHandler)

	tests := []struct {
		name           string
		apiKey         string
		expectedStatus int
	}{
		{
			name:           "valid API key - edge-key",
			apiKey:         "edge-key",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "valid API key - ops-key",
			apiKey:         "ops-key",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing API key",
			apiKey:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid API key",
			apiKey:         "edge-key-2",
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/product/abc123", nil)
			if tt.apiKey != "" {
				req.Header.Set(APIKeyHeader, tt.apiKey)
			}

			w := httptest.NewRecorder()
			authHandler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			if tt.expectedStatus == http.StatusOK {
				if w.Body.String() != "success" {
					t.Errorf("body = %s, want success", w.Body.String())
				}
			}
		})
	}
}

func TestAPIKeyAuth_ProductRoutes(t *testing.T) {
	var buf bytes.Buffer
	authHandler := APIKeyAuth(config.AuthConfig{APIKeys: []string{"edge-key"}}, logger.NewWithWriter("info", &buf))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	routes := []struct {
		method    string
		path      string
		wantRoute string
	}{
		{http.MethodPost, "/product", "create_product"},
		{http.MethodGet, "/product", "list_products"},
		{http.MethodGet, "/product/abc123", "get_product"},
		{http.MethodPut, "/product/abc123", "update_product"},
		{http.MethodDelete, "/product/abc123", "delete_product"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			buf.Reset()

			req := httptest.NewRequest(rt.method, rt.path, nil)
			w := httptest.NewRecorder()
			authHandler.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("without key: status = %d, want %d", w.Code, http.StatusUnauthorized)
			}
			if !strings.Contains(buf.String(), `"route":"`+rt.wantRoute+`"`) {
				t.Errorf("rejection log missing route %s: %s", rt.wantRoute, buf.String())
			}

			req = httptest.NewRequest(rt.method, rt.path, nil)
			req.Header.Set(APIKeyHeader, "edge-key")
			w = httptest.NewRecorder()
			authHandler.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Errorf("with key: status = %d, want %d", w.Code, http.StatusOK)
			}
		})
	}
}
