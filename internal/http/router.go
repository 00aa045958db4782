package http

import (
	"net/http"

	"github.com/SiloGit/bcnotif/internal/shared/loggers"
	"github.com/SiloGit/bcnotif/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the ops HTTP router.
func NewRouter(status StatusSource, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	statusHandler := NewStatusHandler(status)

	// Routes
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/status", errorHandlingAdapter(statusHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
