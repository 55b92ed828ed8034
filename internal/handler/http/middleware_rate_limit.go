package http

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/MKhiriev/go-job-tracker/internal/app"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
)

// apiRateLimit caps the requests a single client IP may make to /api/*
// within the configured window.
func (h *Handler) apiRateLimit() func(http.Handler) http.Handler {
	return rateLimit(h.cfg.RateLimit.API, h.cfg.RateLimit.Window, app.MsgTooManyRequests)
}

// authRateLimit is the stricter ceiling for /api/auth/*. It is counted
// separately from, and in addition to, the API ceiling.
func (h *Handler) authRateLimit() func(http.Handler) http.Handler {
	return rateLimit(h.cfg.RateLimit.Auth, h.cfg.RateLimit.Window, app.MsgTooManyAuthRequests)
}

// rateLimit returns a pass-through middleware when the limit or the window
// is not positive. OPTIONS requests are never counted.
func rateLimit(limit int, window time.Duration, message string) func(http.Handler) http.Handler {
	if limit <= 0 || window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := httprate.Limit(limit, window,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			logger.FromRequest(r).Warn().Str("path", r.URL.Path).Msg("rate limit exceeded")
			utils.WriteError(w, message, http.StatusTooManyRequests)
		}),
	)

	return func(next http.Handler) http.Handler {
		limited := limiter(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			limited.ServeHTTP(w, r)
		})
	}
}
