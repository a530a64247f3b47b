package api

import (
	"indicators/internal/indicator/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(indicatorHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	router.Route("/api/v1/indicators", func(r chi.Router) {
		r.Get("/", indicatorHandler.History)
		r.Post("/uf", indicatorHandler.ArchiveUF)
		r.Post("/dolar", indicatorHandler.SnapshotDolar)
	})
	return router
}
