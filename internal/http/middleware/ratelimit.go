package middleware

import (
	"net/http"
	"strconv"

	"github.com/pixeltrack/pixeltrack/pkg/ratelimiter"
)

const msgTooManyRequests = "Muitas tentativas. Tente novamente mais tarde."

// RateLimit throttles a route per client IP under the given namespace policy
func RateLimit(limiter *ratelimiter.RateLimiter, namespace string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ClientIP(r)
			if !limiter.Allow(namespace, key) {
				if retry := limiter.RetryAfter(namespace, key); retry > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(int(retry.Seconds())))
				}
				WriteError(w, r, msgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
