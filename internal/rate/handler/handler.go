package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"vesrates/internal/domain"
	"vesrates/internal/rate"

	"github.com/google/uuid"
)

type RateService interface {
	Latest(ctx context.Context) (*domain.RateEntry, domain.RateStatus, error)
	Status(ctx context.Context) (domain.RateStatus, error)
	Notifications(ctx context.Context, since time.Time) ([]domain.ChangeNotification, error)
	Dismiss(ctx context.Context, id uuid.UUID) error
}

type OverrideService interface {
	Set(ctx context.Context, date time.Time, value float64) (*rate.DeviationAlert, error)
	Clear(ctx context.Context, date time.Time) error
}

type Handler struct {
	service  RateService
	override OverrideService
}

func NewRateHandler(service RateService, override OverrideService) *Handler {
	return &Handler{service: service, override: override}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
