package handler

import (
	"net/http"
	"strconv"
	"time"

	"vesrates/internal/domain"

	"github.com/sirupsen/logrus"
)

const defaultLookbackHours = 24

type NotificationResponse struct {
	ID        string         `json:"id" example:"77b5d9f5-0569-47e3-aee2-f659d59fbd97"`
	Type      string         `json:"type" example:"rate_change"`
	Title     string         `json:"title" example:"Exchange rate changed"`
	Message   string         `json:"message"`
	Severity  string         `json:"severity" example:"info"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"created_at" example:"2025-03-14T15:04:05Z"`
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// GetNotifications godoc
// @Summary List recent rate notifications
// @Description Change and deviation notifications within a look-back window
// @Tags Notifications
// @Produce json
// @Param hours query int false "Look-back window in hours (default 24)"
// @Success 200 {object} GetNotificationsResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /notifications [get]
func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	hours := defaultLookbackHours
	if raw := r.URL.Query().Get("hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "hours must be a positive integer")
			return
		}
		hours = parsed
	}

	since := time.Now().Add(-time.Duration(hours) * time.Hour)
	notifications, err := h.service.Notifications(r.Context(), since)
	if err != nil {
		msg := "couldn't list notifications this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetNotifications"}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := GetNotificationsResponse{Notifications: make([]NotificationResponse, 0, len(notifications))}
	for _, n := range notifications {
		res.Notifications = append(res.Notifications, toNotificationResponse(n))
	}
	writeJSON(w, http.StatusOK, res)
}

func toNotificationResponse(n domain.ChangeNotification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.String(),
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Severity:  string(n.Severity),
		Metadata:  n.Metadata,
		CreatedAt: n.CreatedAt,
	}
}
