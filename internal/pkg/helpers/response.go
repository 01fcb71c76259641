package helpers

import (
	"homezy-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespError writes err with the status it carries; untyped errors become 500
// and their message is passed through unchanged.
func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	code := errors.Code(err)
	if code >= fiber.StatusInternalServerError && log != nil {
		log.Ctx(ctx.UserContext()).Error("request failed",
			zap.String("path", ctx.Path()),
			zap.Error(err),
		)
	}

	return ctx.Status(code).JSON(Response{
		Success: false,
		Error:   err.Error(),
	})
}
