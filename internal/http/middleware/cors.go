package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
)

// CORS allows the configured origins, a comma separated list or "*"
func CORS(allowOrigin string) func(http.Handler) http.Handler {
	origins := []string{"*"}
	if strings.TrimSpace(allowOrigin) != "" {
		origins = origins[:0]
		for _, origin := range strings.Split(allowOrigin, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	options := []handlers.CORSOption{
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Accept", "Content-Type", "Authorization", RequestIDHeader}),
		handlers.ExposedHeaders([]string{RequestIDHeader, "Retry-After"}),
		handlers.MaxAge(600),
	}
	// credentials cannot be combined with a wildcard origin
	if len(origins) > 0 && origins[0] != "*" {
		options = append(options, handlers.AllowCredentials())
	}

	return handlers.CORS(options...)
}
