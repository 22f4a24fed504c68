package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimiter limits every client IP to App.MaxRequests per second.
func (m *Middlewares) RateLimiter() func(next http.Handler) http.Handler {
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)
}

// LoginRateLimiter is the stricter per-IP limit for credential checks.
func (m *Middlewares) LoginRateLimiter() func(next http.Handler) http.Handler {
	return httprate.Limit(
		10,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
	)
}
