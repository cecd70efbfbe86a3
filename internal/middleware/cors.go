package middleware

import (
	"net/http"

	"wordbook/internal/config"

	"github.com/rs/cors"
)

// CORS allows browser calls from the configured front-end origin only.
// Preflight requests are answered here and never reach the router.
// Requests carrying any other Origin are refused with 403.
func CORS(cfg config.ServerConfig) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Authorization", "Accept", "Content-Type", "Origin"},
		MaxAge:         cfg.CORSMaxAge,
	})

	return func(next http.Handler) http.Handler {
		granted := c.Handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// OriginAllowed rejects an empty origin, so only check when one is sent
			if r.Header.Get("Origin") != "" && !c.OriginAllowed(r) {
				http.Error(w, "Origin not allowed", http.StatusForbidden)
				return
			}
			granted.ServeHTTP(w, r)
		})
	}
}
