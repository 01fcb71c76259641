package handler

import (
	"fmt"

	"homezy-service/internal/module/payout/models/request"
	"homezy-service/internal/module/payout/models/response"
	"homezy-service/internal/module/payout/usecases"
	"homezy-service/internal/pkg/errors"
	"homezy-service/internal/pkg/helpers"
	"homezy-service/internal/pkg/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const missingFields = "Missing required fields"

type PayoutHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

// Withdraw pays out to the signed-in host only; admins may pay any host.
func (h *PayoutHandler) Withdraw(ctx *fiber.Ctx) error {
	sess, ok := session.From(ctx)
	if !ok {
		return helpers.RespError(ctx, h.Log, errors.UnauthorizedError("missing session"))
	}

	var req request.Withdraw
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(missingFields))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(missingFields))
	}

	if req.HostUID != sess.UserID && sess.Role != session.RoleAdmin {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error withdraw: host %s asked to pay %s", sess.UserID, req.HostUID))
		return helpers.RespError(ctx, h.Log, errors.ForbiddenError("hostUid does not match the signed-in host"))
	}

	payout, err := h.Usecase.Withdraw(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error withdraw: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(response.Withdraw{Success: true, Payout: payout})
}
