package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ai-resume-be/internal/pkg/logger"
)

// ErrorHandlerMiddleware converts errors bubbling out of controllers into the
// JSON error envelope. ApiError picks its own status; everything else is a 500
// with the detail kept out of the response body.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var apiErr *ApiError
		if errors.As(err, &apiErr) {
			return ctx.Status(apiErr.Code).JSON(ErrorResponse{
				Success: false,
				Message: apiErr.Message,
				Detail:  apiErr.Detail,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse{
				Success: false,
				Message: fiberErr.Message,
			})
		}

		log.Error("Server", "Unhandled error", map[string]interface{}{
			"error": err.Error(),
			"path":  ctx.Path(),
		})

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Success: false,
			Message: "Internal Server Error",
		})
	}
}
