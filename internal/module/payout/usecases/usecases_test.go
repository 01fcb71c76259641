package usecases_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"homezy-service/internal/module/payout/mocks"
	"homezy-service/internal/module/payout/models/entity"
	"homezy-service/internal/module/payout/models/request"
	"homezy-service/internal/module/payout/usecases"
	customErrors "homezy-service/internal/pkg/errors"
	log_internal "homezy-service/internal/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUsecase(repo *mocks.Repositories) usecases.Usecase {
	n := 0
	return usecases.New(repo, log_internal.Setup(),
		usecases.WithClock(func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }),
		usecases.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	)
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()
	payload := &request.Withdraw{Amount: 1500, Email: "host@homezy.app", HostUID: "h1"}
	result := entity.PayoutResult{BatchHeader: entity.BatchHeader{PayoutBatchID: "PB1", BatchStatus: "PENDING"}}

	t.Run("success", func(t *testing.T) {
		repoMock := mocks.NewRepositories(t)
		uc := newUsecase(repoMock)

		repoMock.On("AvailableBalance", ctx, "h1").Return(2000.0, nil)
		repoMock.On("GetAccessToken", ctx).Return("A21AA", nil)
		repoMock.On("Currency").Return("PHP")
		repoMock.On("CreatePayout", ctx, "A21AA", mock.MatchedBy(func(b entity.PayoutBatch) bool {
			return b.SenderBatchHeader.SenderBatchID == "id-1" &&
				len(b.Items) == 1 &&
				b.Items[0].Amount == entity.Amount{Value: "1500.00", Currency: "PHP"} &&
				b.Items[0].Receiver == "host@homezy.app" &&
				b.Items[0].RecipientType == "EMAIL" &&
				b.Items[0].SenderItemID == "h1"
		})).Return(result, nil)
		repoMock.On("InsertPayout", ctx, mock.MatchedBy(func(p entity.Payout) bool {
			return p.ID == "id-2" && p.BatchID == "PB1" && p.Status == "PENDING" && p.Amount == 1500 && p.HostUID == "h1"
		})).Return(nil)

		resp, err := uc.Withdraw(ctx, payload)
		require.NoError(t, err)
		assert.Equal(t, "id-2", resp.ID)
		assert.Equal(t, "PB1", resp.BatchID)
		assert.Equal(t, "PHP", resp.Currency)
		assert.Equal(t, "2024-03-01T10:00:00Z", resp.CreatedAt)
	})

	t.Run("amount above balance", func(t *testing.T) {
		repoMock := mocks.NewRepositories(t)
		uc := newUsecase(repoMock)
		repoMock.On("AvailableBalance", ctx, "h1").Return(1000.0, nil)

		_, err := uc.Withdraw(ctx, payload)
		assert.EqualError(t, err, "amount exceeds available balance of 1000.00")
		assert.Equal(t, 400, customErrors.Code(err))
		repoMock.AssertNotCalled(t, "GetAccessToken", mock.Anything)
	})

	t.Run("whole balance", func(t *testing.T) {
		repoMock := mocks.NewRepositories(t)
		uc := newUsecase(repoMock)
		repoMock.On("AvailableBalance", ctx, "h1").Return(1500.0, nil)
		repoMock.On("GetAccessToken", ctx).Return("A21AA", nil)
		repoMock.On("Currency").Return("PHP")
		repoMock.On("CreatePayout", ctx, "A21AA", mock.Anything).Return(result, nil)
		repoMock.On("InsertPayout", ctx, mock.Anything).Return(nil)

		_, err := uc.Withdraw(ctx, payload)
		require.NoError(t, err)
	})

	t.Run("balance lookup failure", func(t *testing.T) {
		repoMock := mocks.NewRepositories(t)
		uc := newUsecase(repoMock)
		repoMock.On("AvailableBalance", ctx, "h1").Return(0.0, customErrors.InternalServerError("error get available balance"))

		_, err := uc.Withdraw(ctx, payload)
		assert.EqualError(t, err, "error get available balance")
		repoMock.AssertNotCalled(t, "GetAccessToken", mock.Anything)
	})

	t.Run("token failure", func(t *testing.T) {
		repoMock := mocks.NewRepositories(t)
		uc := newUsecase(repoMock)
		repoMock.On("AvailableBalance", ctx, "h1").Return(2000.0, nil)
		repoMock.On("GetAccessToken", ctx).Return("", customErrors.InternalServerError("PAYPAL_CLIENT_ID and PAYPAL_CLIENT_SECRET must be configured"))

		_, err := uc.Withdraw(ctx, payload)
		assert.EqualError(t, err, "PAYPAL_CLIENT_ID and PAYPAL_CLIENT_SECRET must be configured")
		repoMock.AssertNotCalled(t, "CreatePayout", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("payout rejected", func(t *testing.T) {
		repoMock := mocks.NewRepositories(t)
		uc := newUsecase(repoMock)
		repoMock.On("AvailableBalance", ctx, "h1").Return(2000.0, nil)
		repoMock.On("GetAccessToken", ctx).Return("A21AA", nil)
		repoMock.On("Currency").Return("PHP")
		repoMock.On("CreatePayout", ctx, "A21AA", mock.Anything).Return(entity.PayoutResult{}, errors.New("Sender does not have sufficient funds."))

		_, err := uc.Withdraw(ctx, payload)
		assert.EqualError(t, err, "Sender does not have sufficient funds.")
		repoMock.AssertNotCalled(t, "InsertPayout", mock.Anything, mock.Anything)
	})

	t.Run("record failure", func(t *testing.T) {
		repoMock := mocks.NewRepositories(t)
		uc := newUsecase(repoMock)
		repoMock.On("AvailableBalance", ctx, "h1").Return(2000.0, nil)
		repoMock.On("GetAccessToken", ctx).Return("A21AA", nil)
		repoMock.On("Currency").Return("PHP")
		repoMock.On("CreatePayout", ctx, "A21AA", mock.Anything).Return(result, nil)
		repoMock.On("InsertPayout", ctx, mock.Anything).Return(customErrors.InternalServerError("error insert payout"))

		_, err := uc.Withdraw(ctx, payload)
		assert.EqualError(t, err, "error insert payout")
	})
}
