package http

import (
	"net/http"

	"loanledger-backend/internal/notification"

	"github.com/labstack/echo/v4"
)

type NotificationHandler struct{ feed *notification.Feed }

func NewNotificationHandler(feed *notification.Feed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	notes, err := h.feed.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "notification feed unavailable"})
	}
	return c.JSON(http.StatusOK, notes)
}

// RemoveNotification dismisses a note. Removing an id that is already
// gone is not an error.
func (h *NotificationHandler) RemoveNotification(c echo.Context) error {
	if err := h.feed.Remove(c.Request().Context(), c.Param("notification_id")); err != nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "notification feed unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]any{"applied": true})
}
