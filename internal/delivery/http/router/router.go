package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/user/page-analyzer/internal/delivery/http/handler"
	"github.com/user/page-analyzer/internal/delivery/http/middleware"
)

func New(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", h.HandleHealthCheck)
	mux.HandleFunc("POST /api/urls", h.HandleRegisterURL)
	mux.HandleFunc("GET /api/urls", h.HandleListURLs)
	mux.HandleFunc("GET /api/urls/{id}", h.HandleGetURL)
	mux.HandleFunc("POST /api/urls/{id}/checks", h.HandleRunCheck)
	mux.HandleFunc("GET /api/urls/{id}/checks", h.HandleListChecks)

	// Prometheus metrics endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// Apply middlewares
	var chainedHandler http.Handler = mux
	chainedHandler = middleware.Metrics(chainedHandler)
	chainedHandler = middleware.Logging(chainedHandler)

	return chainedHandler
}
