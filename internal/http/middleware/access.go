package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"doctrack/internal/access"
	"doctrack/internal/model"
)

// RequireView rejects callers whose role may not open view. Session must run first.
func RequireView(policy *access.Policy, view access.View) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return allow(c, policy, view)
	}
}

// RequireBranchView gates routes carrying a :branch parameter by the view that
// lists that branch's documents. Unknown branches are 404.
func RequireBranchView(policy *access.Policy, param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		b := model.Branch(strings.ToUpper(c.Params(param)))
		if !b.Valid() {
			return fiber.ErrNotFound
		}
		return allow(c, policy, access.BranchView(b))
	}
}

func allow(c *fiber.Ctx, policy *access.Policy, view access.View) error {
	u, ok := UserFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	allowed, err := policy.Allowed(u.Role, view)
	if err != nil {
		return err
	}
	if !allowed {
		return fiber.ErrForbidden
	}
	return c.Next()
}
