package handler

import (
	"fmt"

	"homezy-service/internal/module/calendar/usecases"
	"homezy-service/internal/pkg/errors"
	"homezy-service/internal/pkg/helpers"
	"homezy-service/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type CalendarHandler struct {
	Log     *otelzap.Logger
	Usecase usecases.Usecase
}

func (h *CalendarHandler) ShowCalendar(ctx *fiber.Ctx) error {
	sess, ok := session.From(ctx)
	if !ok {
		return helpers.RespError(ctx, h.Log, errors.UnauthorizedError("missing session"))
	}

	resp, err := h.Usecase.ShowCalendar(ctx.UserContext(), sess, ctx.Query("month"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show calendar: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show calendar")
}
