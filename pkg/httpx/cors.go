package httpx

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

// CORS lets browsers on the given origins call the API with cookies.
// Preflight requests are answered here and never reach next. With no
// origins it is a no-op; rs/cors reads an empty list as "any origin".
func CORS(origins ...string) Middleware {
	allowed := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			allowed = append(allowed, o)
		}
	}
	if len(allowed) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowed,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           600,
	})
	return c.Handler
}
