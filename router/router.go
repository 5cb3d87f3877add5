// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bentofolio/showcase-api/cliparse"
	"github.com/bentofolio/showcase-api/handlers"
	"github.com/bentofolio/showcase-api/metrics"
	"github.com/bentofolio/showcase-api/middleware"
	"github.com/bentofolio/showcase-api/showcase"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	// Each router owns its registry so tests can build isolated instances.
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	nominations := showcase.NewNominationStore(db)
	winners := showcase.NewWinnerStore(db)
	resolver := showcase.NewResolver(nominations, winners, showcase.LogNotifier{})
	query := showcase.NewQueryService(nominations, winners, cfg.FinalistLimit)

	nominationHandler := handlers.NewNominationHandler(nominations, m)
	adminHandler := handlers.NewAdminHandler(resolver, cfg, m)
	showcaseHandler := handlers.NewShowcaseHandler(query, m)

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public read model
	mux.HandleFunc("GET /showcase", middleware.WithLogging(showcaseHandler.GetShowcase))

	// Voter operations
	mux.HandleFunc("POST /nominations", middleware.WithLogging(nominationHandler.Nominate))
	mux.HandleFunc("POST /nominations/withdraw", middleware.WithLogging(nominationHandler.Withdraw))
	mux.HandleFunc("GET /nominations/me", middleware.WithLogging(nominationHandler.GetMine))

	// Admin operations (scheduled resolution job calls /admin/resolve)
	mux.HandleFunc("POST /admin/resolve", middleware.WithLogging(adminHandler.Resolve))
	mux.HandleFunc("POST /admin/winners", middleware.WithLogging(adminHandler.SetWinner))
	mux.HandleFunc("POST /admin/winners/clear", middleware.WithLogging(adminHandler.ClearWinners))

	// Observability
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("showcase API v1"))
	})

	return mux
}
