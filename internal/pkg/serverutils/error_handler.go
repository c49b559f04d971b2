package serverutils

import (
	"errors"

	"socialrobot-be/internal/pkg/apperror"
	"socialrobot-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors returned by handlers into a
// BaseResponse with the status of their apperror kind. Server-side failures
// are logged with the request context; client errors are not.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message, nil))
		}

		var appErr *apperror.Error
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal("Internal server error", err)
		}

		status := appErr.Kind.StatusCode()
		if status >= fiber.StatusInternalServerError {
			details := map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"kind":   appErr.Kind.String(),
			}
			if appErr.Err != nil {
				details["error"] = appErr.Err
			}
			log.Error("HTTP", appErr.Message, details)
		}

		return ctx.Status(status).JSON(ErrorResponse(status, appErr.Message, appErr.Details))
	}
}
