package controller

import (
	"errors"

	"socialrobot-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// parseBody decodes the JSON body. Malformed input is a client error, not
// a server one.
func parseBody(ctx *fiber.Ctx, out any) error {
	if err := ctx.BodyParser(out); err != nil {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return fiberErr
		}
		return apperror.Client("Invalid request body")
	}
	return nil
}
