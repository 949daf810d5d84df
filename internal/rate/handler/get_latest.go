package handler

import (
	"errors"
	"net/http"
	"time"

	"vesrates/internal/domain"

	"github.com/sirupsen/logrus"
)

type GetLatestResponse struct {
	AsOfDate     string    `json:"as_of_date" example:"2025-03-14"`
	Rate         float64   `json:"rate" example:"36.42"`
	Source       string    `json:"source" example:"auto:realtime"`
	UpdatedAt    time.Time `json:"updated_at" example:"2025-03-14T15:04:05Z"`
	HasRateToday bool      `json:"has_rate_today" example:"true"`
	IsStale      bool      `json:"is_stale" example:"false"`
}

// GetLatest godoc
// @Summary Get the latest USD/VES rate
// @Description Most recent stored rate together with its staleness status
// @Tags Rates
// @Produce json
// @Success 200 {object} GetLatestResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /rate/latest [get]
func (h *Handler) GetLatest(w http.ResponseWriter, r *http.Request) {
	latest, status, err := h.service.Latest(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrRateNotFound) {
			writeError(w, http.StatusNotFound, "no rate stored yet")
			return
		}
		msg := "couldn't read the latest rate this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetLatest"}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, GetLatestResponse{
		AsOfDate:     latest.AsOfDate.Format(time.DateOnly),
		Rate:         latest.Rate,
		Source:       string(latest.Source),
		UpdatedAt:    latest.CreatedAt,
		HasRateToday: status.HasRateToday,
		IsStale:      status.IsStale,
	})
}
