package api

import (
	_ "vesrates/docs"
	"vesrates/internal/rate/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(rateHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)
	router.Handle("/metrics", promhttp.Handler())

	router.Get("/api/v1/rate/latest", rateHandler.GetLatest)
	router.Get("/api/v1/rate/status", rateHandler.GetStatus)
	router.Put("/api/v1/rate/manual", rateHandler.SetManualRate)
	router.Delete("/api/v1/rate/manual/{date}", rateHandler.ClearManualRate)
	router.Get("/api/v1/notifications", rateHandler.GetNotifications)
	router.Delete("/api/v1/notifications/{id}", rateHandler.DismissNotification)
	return router
}
