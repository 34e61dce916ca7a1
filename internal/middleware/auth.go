package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/kart-challenge/product-edge/internal/config"
	"github.com/Lixing-Zhang/kart-challenge/product-edge/internal/route"
)

// APIKeyHeader is the inbound header checked by APIKeyAuth.
const APIKeyHeader = "api_key"

// APIKeyAuth rejects requests whose api_key header does not match one of
// cfg.APIKeys. The backend credential is never accepted from clients; this
// only guards the edge itself. Rejections are logged with the product route
// the request would have reached.
func APIKeyAuth(cfg config.AuthConfig, log *slog.Logger) func(next http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get(APIKeyHeader)

			if apiKey == "" {
				rejectKey(log, r, "missing")
				http.Error(w, "Unauthorized: API key required", http.StatusUnauthorized)
				return
			}

			if !knownKey(cfg.APIKeys, apiKey) {
				rejectKey(log, r, "invalid")
				http.Error(w, "Forbidden: Invalid API key", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func knownKey(keys []string, apiKey string) bool {
	for _, k := range keys {
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(k)) == 1 {
			return true
		}
	}
	return false
}

func rejectKey(log *slog.Logger, r *http.Request, reason string) {
	rt := route.Match(r.Method, r.URL.EscapedPath())
	log.Warn("inbound api key rejected",
		"reason", reason,
		"route", rt.Kind.String(),
		"productId", rt.ID,
	)
}
