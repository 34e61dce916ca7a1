package middleware

import (
	"net/http"

	"github.com/Lixing-Zhang/kart-challenge/product-edge/internal/route"
)

// MethodGate answers 405 for any method outside route.AllowedMethods before
// the request reaches routing or authentication. chi only knows a fixed set
// of methods and would otherwise reply to unknown verbs like PURGE itself.
func MethodGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !route.MethodAllowed(r.Method) {
			w.Header().Set("Allow", route.AllowedMethods)
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.WriteHeader(http.StatusMethodNotAllowed)
			_, _ = w.Write([]byte(route.MethodNotAllowedBody))
			return
		}

		next.ServeHTTP(w, r)
	})
}
