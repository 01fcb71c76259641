package handler

import (
	"fmt"

	"homezy-service/internal/module/mailer/models/request"
	"homezy-service/internal/module/mailer/usecases"
	"homezy-service/internal/pkg/errors"
	"homezy-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type MailHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *MailHandler) SendVerification(ctx *fiber.Ctx) error {
	var req request.Verification
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	if err := h.Usecase.SendVerification(ctx.UserContext(), &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error send verification: %v", err))
		return helpers.RespError(ctx, h.Log, errors.InternalServerError(err.Error()))
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "Verification email sent")
}

func (h *MailHandler) SendReceipt(ctx *fiber.Ctx) error {
	var req request.BookingEmail
	if err := h.parseBookingEmail(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.SendReceipt(ctx.UserContext(), &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error send receipt: %v", err))
		return helpers.RespError(ctx, h.Log, errors.InternalServerError(err.Error()))
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "Receipt email sent")
}

func (h *MailHandler) SendCancellation(ctx *fiber.Ctx) error {
	var req request.BookingEmail
	if err := h.parseBookingEmail(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.SendCancellation(ctx.UserContext(), &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error send cancellation: %v", err))
		return helpers.RespError(ctx, h.Log, errors.InternalServerError(err.Error()))
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "Cancellation email sent")
}

func (h *MailHandler) parseBookingEmail(ctx *fiber.Ctx, req *request.BookingEmail) error {
	if err := ctx.BodyParser(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return errors.BadRequest("error parse request")
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return errors.BadRequest(err.Error())
	}
	return nil
}
