package middleware

import (
	"net/http"
	"strings"
)

// AllowAnyOrigin sets the permissive CORS headers on every response, so
// clients that send no Origin header still see them. Origin-aware handling
// such as preflight stays with the CORS handler that runs after it.
func AllowAnyOrigin(allowedHeaders []string) func(next http.Handler) http.Handler {
	headers := strings.Join(allowedHeaders, ", ")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Headers", headers)
			next.ServeHTTP(w, r)
		})
	}
}
