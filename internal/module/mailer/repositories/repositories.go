package repositories

import (
	"context"
	"net/http"

	"homezy-service/config"
	"homezy-service/internal/module/mailer/models/entity"
	"homezy-service/internal/pkg/authprovider"
	"homezy-service/internal/pkg/errors"
	"homezy-service/internal/pkg/httpclient"

	circuit "github.com/rubyist/circuitbreaker"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

type repositories struct {
	cfg        *config.MailConfig
	log        *otelzap.Logger
	httpClient *circuit.HTTPClient
	auth       authprovider.Client
}

type Repositories interface {
	// http
	SendEmail(ctx context.Context, email entity.Email) error
	GenerateVerificationLink(ctx context.Context, email string) (string, error)
	Sender() entity.Address
}

func New(cfg *config.MailConfig, log *otelzap.Logger, httpClient *circuit.HTTPClient, auth authprovider.Client) Repositories {
	return &repositories{
		cfg:        cfg,
		log:        log,
		httpClient: httpClient,
		auth:       auth,
	}
}

func (r *repositories) Sender() entity.Address {
	return entity.Address{Name: r.cfg.SenderName, Email: r.cfg.SenderEmail}
}

// SendEmail posts to the mail API. The key is checked per call so a missing
// secret fails the request instead of the process.
func (r *repositories) SendEmail(ctx context.Context, email entity.Email) error {
	span, ctx := apm.StartSpan(ctx, "SendEmail", "external.mail")
	defer span.End()

	if r.cfg.APIKey == "" {
		return errors.InternalServerError("MAIL_API_KEY is not configured")
	}

	var resp struct {
		MessageID string `json:"messageId"`
	}
	err := httpclient.DoJSON(ctx, r.httpClient, httpclient.Request{
		Method: http.MethodPost,
		URL:    r.cfg.BaseURL + "/v3/smtp/email",
		Header: http.Header{"Api-Key": []string{r.cfg.APIKey}},
		Body:   email,
	}, &resp)
	if err != nil {
		r.log.Ctx(ctx).Error("error send email", zap.String("subject", email.Subject), zap.Error(err))
		return err
	}

	r.log.Ctx(ctx).Info("email sent", zap.String("subject", email.Subject), zap.String("message_id", resp.MessageID))
	return nil
}

func (r *repositories) GenerateVerificationLink(ctx context.Context, email string) (string, error) {
	span, ctx := apm.StartSpan(ctx, "GenerateVerificationLink", "external.auth")
	defer span.End()

	return r.auth.GenerateVerificationLink(ctx, email)
}
