package usecases

import (
	"context"
	"fmt"
	"time"

	"homezy-service/internal/module/payout/models/entity"
	"homezy-service/internal/module/payout/models/request"
	"homezy-service/internal/module/payout/models/response"
	"homezy-service/internal/module/payout/repositories"
	"homezy-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type usecase struct {
	repo  repositories.Repositories
	log   *otelzap.Logger
	now   func() time.Time
	newID func() string
}

type Usecase interface {
	Withdraw(ctx context.Context, payload *request.Withdraw) (response.Payout, error)
}

type Option func(*usecase)

func WithClock(now func() time.Time) Option {
	return func(u *usecase) { u.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(u *usecase) { u.newID = newID }
}

func New(repo repositories.Repositories, log *otelzap.Logger, opts ...Option) Usecase {
	u := &usecase{
		repo:  repo,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Withdraw sends amount to the host's PayPal account and records the payout.
// The amount may not exceed the host's unpaid earnings. A failure after PayPal
// accepted the batch is logged with the batch id.
func (u *usecase) Withdraw(ctx context.Context, payload *request.Withdraw) (response.Payout, error) {
	balance, err := u.repo.AvailableBalance(ctx, payload.HostUID)
	if err != nil {
		return response.Payout{}, err
	}
	if payload.Amount > balance {
		return response.Payout{}, errors.BadRequest(fmt.Sprintf("amount exceeds available balance of %.2f", balance))
	}

	token, err := u.repo.GetAccessToken(ctx)
	if err != nil {
		return response.Payout{}, err
	}

	currency := u.repo.Currency()
	batch := entity.PayoutBatch{
		SenderBatchHeader: entity.SenderBatchHeader{
			SenderBatchID: u.newID(),
			EmailSubject:  "You have a payout from Homezy",
			EmailMessage:  "Your Homezy earnings have been sent to your PayPal account.",
		},
		Items: []entity.PayoutItem{{
			RecipientType: "EMAIL",
			Amount:        entity.Amount{Value: fmt.Sprintf("%.2f", payload.Amount), Currency: currency},
			Receiver:      payload.Email,
			Note:          "Homezy host earnings withdrawal",
			SenderItemID:  payload.HostUID,
		}},
	}

	result, err := u.repo.CreatePayout(ctx, token, batch)
	if err != nil {
		return response.Payout{}, err
	}

	payout := entity.Payout{
		ID:        u.newID(),
		HostUID:   payload.HostUID,
		Email:     payload.Email,
		Amount:    payload.Amount,
		Currency:  currency,
		BatchID:   result.BatchHeader.PayoutBatchID,
		Status:    result.BatchHeader.BatchStatus,
		CreatedAt: u.now().UTC(),
	}
	if err := u.repo.InsertPayout(ctx, payout); err != nil {
		u.log.Ctx(ctx).Error("payout sent but not recorded", zap.String("batch_id", payout.BatchID), zap.String("host_uid", payout.HostUID))
		return response.Payout{}, err
	}

	return response.Payout{
		ID:        payout.ID,
		HostUID:   payout.HostUID,
		Email:     payout.Email,
		Amount:    payout.Amount,
		Currency:  payout.Currency,
		BatchID:   payout.BatchID,
		Status:    payout.Status,
		CreatedAt: payout.CreatedAt.Format(time.RFC3339),
	}, nil
}
