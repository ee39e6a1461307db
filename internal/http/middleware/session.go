package middleware

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"doctrack/internal/model"
)

// Identity headers set by the fronting login proxy.
const (
	UserIDHeader   = "X-User-ID"
	UserNameHeader = "X-User-Name"
	UserRoleHeader = "X-User-Role"

	userLocalKey = "user"
)

// Session resolves the caller from the identity headers and stores it in locals.
// Requests without a valid ID and role are rejected with 401.
// X-User-Name may be percent-encoded so that non-Latin names survive transport.
// The identity is copied out of the request buffer because it ends up in stored history.
func Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := header(c, UserIDHeader)
		role := model.Branch(strings.ToUpper(header(c, UserRoleHeader)))
		if id == "" || !role.Valid() {
			return fiber.ErrUnauthorized
		}

		name := utils.CopyString(c.Get(UserNameHeader))
		if decoded, err := url.PathUnescape(name); err == nil {
			name = decoded
		}
		name = strings.TrimSpace(name)
		if name == "" {
			name = id
		}

		c.Locals(userLocalKey, model.User{ID: id, Username: id, DisplayName: name, Role: role})
		return c.Next()
	}
}

func header(c *fiber.Ctx, key string) string {
	return utils.CopyString(strings.TrimSpace(c.Get(key)))
}

// UserFrom returns the caller stored by Session.
func UserFrom(c *fiber.Ctx) (model.User, bool) {
	u, ok := c.Locals(userLocalKey).(model.User)
	return u, ok
}
