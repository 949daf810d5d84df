package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"vesrates/internal/domain"

	"github.com/sirupsen/logrus"
)

type SetManualRateRequest struct {
	Date string  `json:"date,omitempty" example:"2025-03-14"`
	Rate float64 `json:"rate" example:"36.50"`
}

type DeviationResponse struct {
	ManualRate    float64 `json:"manual_rate" example:"50.00"`
	APIRate       float64 `json:"api_rate" example:"47.00"`
	DifferencePct float64 `json:"difference_percent" example:"6.38"`
}

type SetManualRateResponse struct {
	AsOfDate  string             `json:"as_of_date" example:"2025-03-14"`
	Rate      float64            `json:"rate" example:"36.50"`
	Source    string             `json:"source" example:"manual"`
	Deviation *DeviationResponse `json:"deviation,omitempty"`
}

// SetManualRate godoc
// @Summary Apply a manual rate override
// @Description Persists an operator-entered rate; warns when it deviates from the provider rate
// @Tags Rates
// @Accept json
// @Produce json
// @Param request body SetManualRateRequest true "Manual rate"
// @Success 200 {object} SetManualRateResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /rate/manual [put]
func (h *Handler) SetManualRate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 256)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req SetManualRateRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	alert, err := h.override.Set(r.Context(), date, req.Rate)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidManualRate) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		msg := "manual rate wasn't applied"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "SetManualRate", "rate": req.Rate}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := SetManualRateResponse{
		AsOfDate: date.Format(time.DateOnly),
		Rate:     req.Rate,
		Source:   string(domain.SourceManual),
	}
	if alert != nil {
		res.Deviation = &DeviationResponse{
			ManualRate:    alert.ManualRate,
			APIRate:       alert.APIRate,
			DifferencePct: alert.DifferencePct,
		}
	}
	writeJSON(w, http.StatusOK, res)
}
