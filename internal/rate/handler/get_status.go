package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type GetStatusResponse struct {
	HasRateToday bool       `json:"has_rate_today" example:"true"`
	IsStale      bool       `json:"is_stale" example:"false"`
	Rate         *float64   `json:"rate,omitempty" example:"36.42"`
	Source       string     `json:"source,omitempty" example:"manual"`
	LastUpdate   *time.Time `json:"last_update,omitempty" example:"2025-03-14T15:04:05Z"`
}

// GetStatus godoc
// @Summary Get rate status
// @Description Staleness and has-rate-today evaluation of the stored rate
// @Tags Rates
// @Produce json
// @Success 200 {object} GetStatusResponse
// @Failure 500 {object} errorResponse
// @Router /rate/status [get]
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.Status(r.Context())
	if err != nil {
		msg := "couldn't evaluate rate status this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetStatus"}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, GetStatusResponse{
		HasRateToday: status.HasRateToday,
		IsStale:      status.IsStale,
		Rate:         status.Rate,
		Source:       string(status.Source),
		LastUpdate:   status.LastUpdate,
	})
}
