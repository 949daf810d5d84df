package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// ClearManualRate godoc
// @Summary Clear a manual rate override
// @Description Removes the manual entry for a date so automated sync can write again
// @Tags Rates
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 204 "cleared"
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /rate/manual/{date} [delete]
func (h *Handler) ClearManualRate(w http.ResponseWriter, r *http.Request) {
	rawDate := chi.URLParam(r, "date")
	date, err := time.Parse(time.DateOnly, rawDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	if err = h.override.Clear(r.Context(), date); err != nil {
		msg := "manual rate wasn't cleared"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ClearManualRate", "date": rawDate}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
