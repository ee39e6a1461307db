package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"doctrack/internal/http/middleware"
	"doctrack/internal/locale"
	"doctrack/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// apiError is returned by handlers for request problems detected at the HTTP edge.
type apiError struct {
	status    int
	code      string
	messageID string
}

func (e *apiError) Error() string { return e.code }

var (
	errFileRequired = &apiError{fiber.StatusBadRequest, "FILE_REQUIRED", locale.ErrorFileRequired}
	errInvalidBody  = &apiError{fiber.StatusBadRequest, "INVALID_BODY", locale.ErrorBadRequest}
	errUnavailable  = &apiError{fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", locale.ErrorUnavailable}
)

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, code, message string, fields []string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
			Fields:  fields,
		},
	}
	return c.Status(status).JSON(res)
}

// ErrorHandler returns a Fiber global error handler that maps service and
// transport errors to the standard envelope, with messages in the request locale.
func ErrorHandler(tr *locale.Translator, log *zap.Logger) fiber.ErrorHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *fiber.Ctx, err error) error {
		l := middleware.LocaleFrom(c, tr.Default())
		msg := func(id string) string { return tr.T(l, id, nil) }

		var (
			ae *apiError
			ve *service.ValidationError
			fe *fiber.Error
		)
		switch {
		case errors.As(err, &ae):
			return writeError(c, ae.status, ae.code, msg(ae.messageID), nil)
		case errors.As(err, &ve):
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_FAILED", msg(locale.ErrorValidation), ve.Fields)
		case errors.Is(err, service.ErrNotFound):
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", msg(locale.ErrorNotFound), nil)
		case errors.Is(err, service.ErrEmptyQuery):
			return writeError(c, fiber.StatusBadRequest, "EMPTY_QUERY", msg(locale.ErrorEmptyQuery), nil)
		case errors.Is(err, service.ErrIDRequired):
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", msg(locale.ErrorBadRequest), nil)
		case errors.Is(err, service.ErrReaderNil):
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", msg(locale.ErrorFileRequired), nil)
		case errors.Is(err, service.ErrAttachmentsDisabled):
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", msg(locale.ErrorUnavailable), nil)
		case errors.As(err, &fe):
			switch fe.Code {
			case fiber.StatusBadRequest:
				return writeError(c, fe.Code, "BAD_REQUEST", msg(locale.ErrorBadRequest), nil)
			case fiber.StatusUnauthorized:
				return writeError(c, fe.Code, "UNAUTHENTICATED", msg(locale.ErrorUnauthenticated), nil)
			case fiber.StatusForbidden:
				return writeError(c, fe.Code, "FORBIDDEN", msg(locale.ErrorForbidden), nil)
			case fiber.StatusNotFound:
				return writeError(c, fe.Code, "NOT_FOUND", msg(locale.ErrorResourceNotFound), nil)
			case fiber.StatusMethodNotAllowed:
				return writeError(c, fe.Code, "METHOD_NOT_ALLOWED", msg(locale.ErrorMethodNotAllowed), nil)
			case fiber.StatusRequestEntityTooLarge:
				return writeError(c, fe.Code, "PAYLOAD_TOO_LARGE", msg(locale.ErrorBadRequest), nil)
			case fiber.StatusServiceUnavailable:
				return writeError(c, fe.Code, "SERVICE_UNAVAILABLE", msg(locale.ErrorUnavailable), nil)
			}
		}

		log.Error("request_failed", zap.String("request_id", requestIDFromCtx(c)), zap.Error(err))
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", msg(locale.ErrorInternal), nil)
	}
}
