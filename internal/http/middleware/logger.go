package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Logger writes one structured entry per request with request_id, method,
// path, status and latency in milliseconds.
// It expects RequestID to run first.
func Logger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := settle(c, c.Next())

		status := c.Response().StatusCode()
		rid, _ := c.Locals(RequestIDLocalKey).(string)
		fields := []zap.Field{
			zap.String("request_id", rid),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Float64("latency", float64(time.Since(start).Microseconds())/1000),
		}
		if status >= fiber.StatusInternalServerError {
			log.Error("http_request", append(fields, zap.Error(err))...)
		} else {
			log.Info("http_request", fields...)
		}
		return nil
	}
}

const chainErrorLocalKey = "chain_error"

// settle hands a chain error to the app's error handler so the response
// status is final before it is observed. It returns the error that was
// settled here or by an inner middleware.
func settle(c *fiber.Ctx, err error) error {
	if err == nil {
		prev, _ := c.Locals(chainErrorLocalKey).(error)
		return prev
	}
	c.Locals(chainErrorLocalKey, err)
	if herr := c.App().ErrorHandler(c, err); herr != nil {
		_ = c.SendStatus(fiber.StatusInternalServerError)
	}
	return err
}
