package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mcastelo/palco/internal/http/casting"
	"github.com/mcastelo/palco/internal/http/importcsv"
	"github.com/mcastelo/palco/internal/http/insights"
	"github.com/mcastelo/palco/internal/http/report"
	"github.com/mcastelo/palco/internal/http/transaction"
)

func New(
	castingsV1 *casting.Handler,
	transactionsV1 *transaction.Handler,
	reportsV1 *report.Handler,
	importV1 *importcsv.Handler,
	insightsV1 *insights.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// The web frontend is served from a different origin.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/castings", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			castingsV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/reports", reportsV1.Routes)

		r.Route("/import", importV1.Routes)

		r.Route("/insights", insightsV1.Routes)
	})

	return router
}
