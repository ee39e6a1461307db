package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"doctrack/internal/access"
	"doctrack/internal/model"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger func(ctx context.Context) error

// HealthCheck godoc
// @Summary Dependency health
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(pings ...Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		for _, ping := range pings {
			if ping == nil {
				continue
			}
			if err := ping(ctx); err != nil {
				return errUnavailable
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// Liveness answers 200 while the process is up.
func Liveness() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

type viewsResponse struct {
	Role  model.Branch  `json:"role"`
	Views []access.View `json:"views"`
}

// MyViews godoc
// @Summary Views the caller's role may open
// @Tags access
// @Produce json
// @Success 200 {object} viewsResponse
// @Failure 401 {object} errorPayload
// @Router /api/v1/me/views [get]
func MyViews(policy *access.Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}
		views, err := policy.ViewsFor(user.Role)
		if err != nil {
			return err
		}
		return c.JSON(viewsResponse{Role: user.Role, Views: views})
	}
}
