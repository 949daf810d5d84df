package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DismissNotification godoc
// @Summary Dismiss a notification
// @Description Deletes the notification record; dismissal is permanent
// @Tags Notifications
// @Param id path string true "Notification ID"
// @Success 204 "dismissed"
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /notifications/{id} [delete]
func (h *Handler) DismissNotification(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	id, err := uuid.Parse(rawID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid notification ID format")
		return
	}

	if err = h.service.Dismiss(r.Context(), id); err != nil {
		msg := "notification wasn't dismissed"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "DismissNotification", "id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
