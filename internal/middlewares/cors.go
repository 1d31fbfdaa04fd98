package middlewares

import (
	"net/http"
	"regexp"

	"github.com/go-chi/cors"
)

var productionOrigin = regexp.MustCompile(`^https://.*\.example\.com$`)

// CORSMiddleware allows credentialed cross-origin requests. In production only
// https subdomains of example.com are accepted.
func CORSMiddleware(production bool) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			if !production {
				return true
			}
			return productionOrigin.MatchString(origin)
		},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
