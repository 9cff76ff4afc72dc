package http

import (
	"meatdelivery/internal/core/application/usecases/commands"
	"meatdelivery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListNotifications handles GET /notifications?limit=.
func (s *Server) ListNotifications(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}

	q, err := queries.NewListNotificationsQuery(actorFrom(c).ID, limit)
	if err != nil {
		return err
	}
	inbox, err := s.h.ListNotifications.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return ok(c, "", inbox)
}

// MarkNotificationRead handles PATCH /notifications/:id/read.
func (s *Server) MarkNotificationRead(c echo.Context) error {
	notificationID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, actorFrom(c).ID)
	if err != nil {
		return err
	}
	if _, err = s.h.MarkNotificationRead.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return ok(c, "Notification marked as read", nil)
}
