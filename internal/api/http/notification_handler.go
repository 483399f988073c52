package http

import (
	"net/http"
	"strconv"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/service"
)

type NotificationHandler struct {
	notes service.NotificationService
}

func NewNotificationHandler(notes service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notes: notes}
}

type notificationListResponse struct {
	Notifications []domain.MotoNotification `json:"notifications"`
	Total         int32                     `json:"total"`
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)

	notes, total, err := h.notes.ListNotifications(r.Context(), page, pageSize)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if notes == nil {
		notes = []domain.MotoNotification{}
	}
	writeJSON(w, http.StatusOK, notificationListResponse{Notifications: notes, Total: total})
}

func queryInt32(r *http.Request, key string, def int32) int32 {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return def
	}
	return int32(n)
}
