package handler

import (
	"github.com/gofiber/fiber/v2"

	"doctrack/internal/model"
	"doctrack/internal/service"
)

type notificationList struct {
	Items  []model.Notification `json:"items"`
	Unread int                  `json:"unread"`
}

// ListNotifications godoc
// @Summary List notifications, most recent first
// @Tags notifications
// @Produce json
// @Success 200 {object} notificationList
// @Router /api/v1/notifications [get]
func ListNotifications(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return err
		}
		res := notificationList{Items: items}
		if res.Items == nil {
			res.Items = []model.Notification{}
		}
		for _, n := range res.Items {
			if !n.Read {
				res.Unread++
			}
		}
		return c.JSON(res)
	}
}

// ClearNotifications godoc
// @Summary Delete every notification
// @Tags notifications
// @Success 204
// @Router /api/v1/notifications [delete]
func ClearNotifications(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.ClearAll(c.UserContext()); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
