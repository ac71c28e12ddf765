package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-web-sdk-demo/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// withMetrics records every request under its chi route pattern. Requests
// that match no route are recorded as "unmatched".
func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		var route string
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		status := mw.status
		if status == 0 {
			status = http.StatusOK
		}
		metrics.ObserveHTTPRequest(route, r.Method, status, time.Since(start))
	})
}
