package usecases_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"homezy-service/internal/module/mailer/mocks"
	"homezy-service/internal/module/mailer/models/entity"
	"homezy-service/internal/module/mailer/models/request"
	"homezy-service/internal/module/mailer/usecases"
	log_internal "homezy-service/internal/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var sender = entity.Address{Name: "Homezy", Email: "no-reply@homezy.app"}

func setup(t *testing.T) (usecases.Usecase, *mocks.Repositories) {
	repoMock := mocks.NewRepositories(t)
	return usecases.New(repoMock, log_internal.Setup()), repoMock
}

func TestSendVerification(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc, repoMock := setup(t)
		ctx := context.Background()

		repoMock.On("GenerateVerificationLink", ctx, "guest@homezy.app").Return("https://auth/verify?oob=1", nil)
		repoMock.On("Sender").Return(sender)
		repoMock.On("SendEmail", ctx, mock.MatchedBy(func(e entity.Email) bool {
			return e.Subject == "Verify your Homezy account" &&
				e.To[0].Email == "guest@homezy.app" &&
				assert.Contains(t, e.HTMLContent, "https://auth/verify?oob=1") &&
				assert.Contains(t, e.HTMLContent, "Juan")
		})).Return(nil)

		err := uc.SendVerification(ctx, &request.Verification{Email: "guest@homezy.app", FullName: "Juan"})
		assert.NoError(t, err)
	})

	t.Run("link generation fails", func(t *testing.T) {
		uc, repoMock := setup(t)
		ctx := context.Background()

		repoMock.On("GenerateVerificationLink", ctx, "guest@homezy.app").Return("", errors.New("USER_NOT_FOUND"))

		err := uc.SendVerification(ctx, &request.Verification{Email: "guest@homezy.app", FullName: "Juan"})
		assert.EqualError(t, err, "USER_NOT_FOUND")
		repoMock.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	})
}

func TestSendReceipt(t *testing.T) {
	uc, repoMock := setup(t)
	ctx := context.Background()
	payload := request.BookingEmail{
		Email:        "guest@homezy.app",
		FullName:     "Juan",
		ListingTitle: "Cozy Loft",
		CheckIn:      "2024-03-30",
		CheckOut:     "2024-04-02",
		Guests:       2,
		Price:        5000,
	}

	repoMock.On("Sender").Return(sender)
	repoMock.On("SendEmail", ctx, mock.MatchedBy(func(e entity.Email) bool {
		return e.Subject == "Booking receipt: Cozy Loft" &&
			e.Sender == sender &&
			assert.Contains(t, e.HTMLContent, "5000.00") &&
			assert.Contains(t, e.HTMLContent, "2024-04-02")
	})).Return(nil)

	assert.NoError(t, uc.SendReceipt(ctx, &payload))
}

func TestSendCancellation(t *testing.T) {
	uc, repoMock := setup(t)
	ctx := context.Background()
	payload := request.BookingEmail{
		Email:        "guest@homezy.app",
		FullName:     "<script>x</script>",
		ListingTitle: "Cozy Loft",
		CheckIn:      "2024-03-30",
		CheckOut:     "2024-04-02",
	}

	repoMock.On("Sender").Return(sender)
	repoMock.On("SendEmail", ctx, mock.MatchedBy(func(e entity.Email) bool {
		return e.Subject == "Booking cancelled: Cozy Loft" &&
			!strings.Contains(e.HTMLContent, "<script>")
	})).Return(errors.New("upstream responded 401"))

	err := uc.SendCancellation(ctx, &payload)
	assert.EqualError(t, err, "upstream responded 401")
}
