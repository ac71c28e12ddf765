package http

import (
	"github.com/MKhiriev/go-web-sdk-demo/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, withMetrics, withStaticHeaders, withGZip)

	// checkout demo
	router.Group(func(r chi.Router) {
		r.Get("/", h.indexPage)
		r.Get("/style.css", h.stylesheet)
		r.Get(h.preset.ScriptRoute, h.clientScript)
	})

	// operational
	router.Group(func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Method("GET", "/metrics", metrics.Handler())
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
