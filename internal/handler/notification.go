package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-web/internal/middleware"
	"github.com/iliyamo/car-rental-web/internal/model"
	"github.com/iliyamo/car-rental-web/internal/notification"
)

// NotificationHandler exposes the visitor's notification panel.  Browsers
// post forms and are sent back; JSON clients get the updated list.
type NotificationHandler struct {
	Registry *notification.Registry
}

func NewNotificationHandler(r *notification.Registry) *NotificationHandler {
	return &NotificationHandler{Registry: r}
}

type notificationList struct {
	Items  []model.Notification `json:"items"`
	Unread int                  `json:"unread"`
}

func (h *NotificationHandler) store(c echo.Context) (*notification.Store, error) {
	st := middleware.UIFrom(c)
	if st == nil || st.SID == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Sesi tampilan tidak ditemukan.")
	}
	return h.Registry.For(st.SID), nil
}

func (h *NotificationHandler) List(c echo.Context) error {
	s, err := h.store(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notificationList{Items: s.List(), Unread: s.UnreadCount()})
}

func (h *NotificationHandler) ReadAll(c echo.Context) error {
	return h.apply(c, func(s *notification.Store) { s.MarkAllAsRead() })
}

func (h *NotificationHandler) ClearAll(c echo.Context) error {
	return h.apply(c, func(s *notification.Store) { s.ClearAll() })
}

func (h *NotificationHandler) Read(c echo.Context) error {
	id := c.Param("id")
	return h.apply(c, func(s *notification.Store) { s.MarkAsRead(id) })
}

func (h *NotificationHandler) Clear(c echo.Context) error {
	id := c.Param("id")
	return h.apply(c, func(s *notification.Store) { s.Clear(id) })
}

func (h *NotificationHandler) apply(c echo.Context, fn func(*notification.Store)) error {
	s, err := h.store(c)
	if err != nil {
		return err
	}
	fn(s)
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, notificationList{Items: s.List(), Unread: s.UnreadCount()})
	}
	return c.Redirect(http.StatusSeeOther, back(c, "/"))
}
