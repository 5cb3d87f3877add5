// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the showcase service together and defines its routes
using Go 1.22+ method routing.

NewRouter builds the stores, resolver, and query service around a *sql.DB,
registers metrics on a per-router Prometheus registry, and returns a
ready-to-serve *http.ServeMux:

	mux := router.NewRouter(dbConn, cfg)
	http.ListenAndServe(addr, middleware.CORS(mux))

# Routes

	GET  /health                  liveness probe
	GET  /showcase                public read model
	GET  /nominations/me          voter's active nomination
	POST /nominations             nominate (two-phase override)
	POST /nominations/withdraw    un-nominate
	POST /admin/resolve           automatic resolution (cron entry point)
	POST /admin/winners           manual winner pick
	POST /admin/winners/clear     reopen a decided week
	GET  /metrics                 Prometheus
*/
package router
