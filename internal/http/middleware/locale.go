package middleware

import (
	"github.com/gofiber/fiber/v2"

	"doctrack/internal/locale"
)

// LocaleHeader selects the response language; the lang query parameter wins over it.
const (
	LocaleHeader   = "X-Locale"
	localeLocalKey = "locale"
)

// Locale stores the requested locale, or def when none or an unsupported one is given.
func Locale(def locale.Locale) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := def
		if v, ok := locale.Parse(c.Query("lang")); ok {
			l = v
		} else if v, ok := locale.Parse(c.Get(LocaleHeader)); ok {
			l = v
		}
		c.Locals(localeLocalKey, l)
		return c.Next()
	}
}

// LocaleFrom returns the locale stored by Locale, or def.
func LocaleFrom(c *fiber.Ctx, def locale.Locale) locale.Locale {
	if l, ok := c.Locals(localeLocalKey).(locale.Locale); ok {
		return l
	}
	return def
}
