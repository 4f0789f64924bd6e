package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/felixge/httpsnoop"
)

// redactedParams are query parameters whose values are never logged.
var redactedParams = []string{"key"}

// Logger logs request details and response metrics.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(next, w, r)
			logger.Info(
				fmt.Sprintf("%s %s", r.Method, redactURL(r.URL)),
				"response_code", m.Code,
				"duration", m.Duration,
				"bytes_sent", m.Written,
				"remote_addr", r.RemoteAddr,
				"request_id", RequestIDFromContext(r.Context()),
			)
		})
	}
}

// redactURL returns the request URI of u with the values of sensitive query
// parameters replaced.
func redactURL(u *url.URL) string {
	ru := *u
	query := ru.Query()
	changed := false
	for _, p := range redactedParams {
		if vals, ok := query[p]; ok {
			for i := range vals {
				vals[i] = "REDACTED"
			}
			changed = true
		}
	}
	if changed {
		ru.RawQuery = query.Encode()
	}

	return ru.RequestURI()
}
