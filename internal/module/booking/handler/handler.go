package handler

import (
	"context"
	"fmt"

	"homezy-service/internal/module/booking/models/request"
	"homezy-service/internal/module/booking/usecases"
	"homezy-service/internal/pkg/errors"
	"homezy-service/internal/pkg/helpers"
	"homezy-service/internal/pkg/messagestream"
	"homezy-service/internal/pkg/session"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

func currentSession(ctx *fiber.Ctx) (session.Session, error) {
	sess, ok := session.From(ctx)
	if !ok {
		return session.Session{}, errors.UnauthorizedError("missing session")
	}
	return sess, nil
}

func (h *BookingHandler) BookListing(ctx *fiber.Ctx) error {
	sess, err := currentSession(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.BookListing
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	// call usecase to queue the booking request
	if err := h.Usecase.BookListing(ctx.UserContext(), sess, &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error book listing: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "Booking request sent, waiting for host approval")
}

func (h *BookingHandler) ShowGuestBookings(ctx *fiber.Ctx) error {
	sess, err := currentSession(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.ShowGuestBookings(ctx.UserContext(), sess)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show guest bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show bookings")
}

func (h *BookingHandler) RequestCancellation(ctx *fiber.Ctx) error {
	sess, err := currentSession(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.RequestCancellation(ctx.UserContext(), sess, ctx.Params("id")); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error request cancellation: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "Cancellation request sent, awaiting host approval")
}

func (h *BookingHandler) ShowHostNotifications(ctx *fiber.Ctx) error {
	sess, err := currentSession(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.ShowHostNotifications(ctx.UserContext(), sess)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show host notifications: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show notifications")
}

func (h *BookingHandler) DecideNotification(ctx *fiber.Ctx) error {
	sess, err := currentSession(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.Decision
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.DecideNotification(ctx.UserContext(), sess, ctx.Params("id"), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error decide notification: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, fmt.Sprintf("Request %s", resp.Status))
}

func (h *BookingHandler) ShowGuestNotifications(ctx *fiber.Ctx) error {
	sess, err := currentSession(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.ShowGuestNotifications(ctx.UserContext(), sess)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show guest notifications: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show notifications")
}

func (h *BookingHandler) DeleteGuestNotification(ctx *fiber.Ctx) error {
	sess, err := currentSession(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.DeleteGuestNotification(ctx.UserContext(), sess, ctx.Params("id")); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete guest notification: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "Notification deleted")
}

func (h *BookingHandler) ShowHostTransactions(ctx *fiber.Ctx) error {
	sess, err := currentSession(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.ShowHostTransactions(ctx.UserContext(), sess)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show host transactions: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show transactions")
}

// poison keeps the original payload: embedded as JSON when it parses, as a
// string otherwise.
func (h *BookingHandler) poison(msg *message.Message, topic string, cause error) {
	var payload interface{} = string(msg.Payload)
	if json.Valid(msg.Payload) {
		payload = json.RawMessage(msg.Payload)
	}

	reqPoisoned := request.PoisonedQueue{
		TopicTarget: topic,
		ErrorMsg:    cause.Error(),
		Payload:     payload,
	}

	jsonPayload, err := json.Marshal(reqPoisoned)
	if err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error marshal poisoned message %s: %v", msg.UUID, err))
		return
	}
	if err := h.Publish.Publish(messagestream.TopicPoisonedQueue, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
	}
}

// ConsumeBookingQueue stores queued booking requests. Malformed payloads go
// straight to the poison queue; store failures are returned so the router
// retries them first.
func (h *BookingHandler) ConsumeBookingQueue(msg *message.Message) error {
	var req request.BookListing
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		h.poison(msg, messagestream.TopicBookListing, err)
		return nil
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error validate message: %v", err))
		h.poison(msg, messagestream.TopicBookListing, err)
		return nil
	}

	// call usecase to consume booking queue
	if err := h.Usecase.ConsumeBookListingQueue(context.Background(), &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error consume booking queue: %v", err))
		if errors.Code(err) < fiber.StatusInternalServerError {
			h.poison(msg, messagestream.TopicBookListing, err)
			return nil
		}
		return err
	}

	return nil
}

func (h *BookingHandler) ConsumeSendEmail(msg *message.Message) error {
	var req request.OutboxDispatch
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		h.poison(msg, messagestream.TopicSendEmail, err)
		return nil
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error validate message: %v", err))
		h.poison(msg, messagestream.TopicSendEmail, err)
		return nil
	}

	// call usecase to deliver the outbox email
	if err := h.Usecase.DeliverOutbox(context.Background(), &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error deliver outbox: %v", err))
		return err
	}

	return nil
}

func (h *BookingHandler) MarkGuestNotificationsRead(ctx context.Context, t *asynq.Task) error {
	var req request.MarkRead
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	// call usecase to mark notifications read
	if err := h.Usecase.MarkGuestNotificationsRead(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error mark guest notifications read: %v", err))
		return err
	}

	return nil
}

func (h *BookingHandler) RedispatchOutbox(ctx context.Context, t *asynq.Task) error {
	if err := h.Usecase.RedispatchOutbox(ctx); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error redispatch outbox: %v", err))
		return err
	}

	return nil
}
