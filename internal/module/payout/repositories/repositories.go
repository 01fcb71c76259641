package repositories

import (
	"context"
	"encoding/base64"
	stdErrors "errors"
	"fmt"
	"net/http"
	"strings"

	"homezy-service/config"
	"homezy-service/internal/module/payout/models/entity"
	"homezy-service/internal/pkg/errors"
	"homezy-service/internal/pkg/httpclient"

	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

type repositories struct {
	cfg        *config.PayPalConfig
	db         *sqlx.DB
	log        *otelzap.Logger
	httpClient *circuit.HTTPClient
}

type Repositories interface {
	// http
	GetAccessToken(ctx context.Context) (string, error)
	CreatePayout(ctx context.Context, token string, batch entity.PayoutBatch) (entity.PayoutResult, error)
	Currency() string
	// db
	AvailableBalance(ctx context.Context, hostUID string) (float64, error)
	InsertPayout(ctx context.Context, payout entity.Payout) error
}

func New(cfg *config.PayPalConfig, db *sqlx.DB, log *otelzap.Logger, httpClient *circuit.HTTPClient) Repositories {
	return &repositories{
		cfg:        cfg,
		db:         db,
		log:        log,
		httpClient: httpClient,
	}
}

func (r *repositories) Currency() string {
	return r.cfg.Currency
}

func (r *repositories) GetAccessToken(ctx context.Context) (string, error) {
	span, ctx := apm.StartSpan(ctx, "GetAccessToken", "external.paypal")
	defer span.End()

	if r.cfg.ClientID == "" || r.cfg.ClientSecret == "" {
		return "", errors.InternalServerError("PAYPAL_CLIENT_ID and PAYPAL_CLIENT_SECRET must be configured")
	}

	basic := base64.StdEncoding.EncodeToString([]byte(r.cfg.ClientID + ":" + r.cfg.ClientSecret))
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	err := httpclient.DoJSON(ctx, r.httpClient, httpclient.Request{
		Method: http.MethodPost,
		URL:    r.cfg.BaseURL + "/v1/oauth2/token",
		Header: http.Header{
			"Authorization": []string{"Basic " + basic},
			"Content-Type":  []string{"application/x-www-form-urlencoded"},
		},
		RawBody: strings.NewReader("grant_type=client_credentials"),
	}, &resp)
	if err != nil {
		r.log.Ctx(ctx).Error("error get paypal access token", zap.Error(err))
		return "", upstream(err)
	}
	if resp.AccessToken == "" {
		return "", errors.InternalServerError("paypal returned an empty access token")
	}
	return resp.AccessToken, nil
}

func (r *repositories) CreatePayout(ctx context.Context, token string, batch entity.PayoutBatch) (entity.PayoutResult, error) {
	span, ctx := apm.StartSpan(ctx, "CreatePayout", "external.paypal")
	defer span.End()

	var result entity.PayoutResult
	err := httpclient.DoJSON(ctx, r.httpClient, httpclient.Request{
		Method: http.MethodPost,
		URL:    r.cfg.BaseURL + "/v1/payments/payouts",
		Header: http.Header{"Authorization": []string{"Bearer " + token}},
		Body:   batch,
	}, &result)
	if err != nil {
		r.log.Ctx(ctx).Error("error create paypal payout", zap.String("sender_batch_id", batch.SenderBatchHeader.SenderBatchID), zap.Error(err))
		return entity.PayoutResult{}, upstream(err)
	}

	r.log.Ctx(ctx).Info("paypal payout created", zap.String("payout_batch_id", result.BatchHeader.PayoutBatchID), zap.String("batch_status", result.BatchHeader.BatchStatus))
	return result, nil
}

// AvailableBalance is what the host earned from completed bookings minus what
// was already paid out.
func (r *repositories) AvailableBalance(ctx context.Context, hostUID string) (float64, error) {
	span, ctx := apm.StartSpan(ctx, "AvailableBalance", "db.postgresql.query")
	defer span.End()

	var balance float64
	err := r.db.GetContext(ctx, &balance, `SELECT
		(SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE host_id = $1 AND status = 'completed') -
		(SELECT COALESCE(SUM(amount), 0) FROM payouts WHERE host_uid = $1)`, hostUID)
	if err != nil {
		r.log.Ctx(ctx).Error("error get available balance", zap.String("host_uid", hostUID), zap.Error(err))
		return 0, errors.InternalServerError("error get available balance")
	}
	return balance, nil
}

func (r *repositories) InsertPayout(ctx context.Context, payout entity.Payout) error {
	span, ctx := apm.StartSpan(ctx, "InsertPayout", "db.postgresql.query")
	defer span.End()

	_, err := r.db.NamedExecContext(ctx, `INSERT INTO payouts (id, host_uid, email, amount, currency, batch_id, status, created_at)
		VALUES (:id, :host_uid, :email, :amount, :currency, :batch_id, :status, :created_at)`, payout)
	if err != nil {
		r.log.Ctx(ctx).Error("error insert payout", zap.String("batch_id", payout.BatchID), zap.Error(err))
		return errors.InternalServerError("error insert payout")
	}
	return nil
}

// upstream surfaces the gateway's own message when its error body carries one.
func upstream(err error) error {
	var ue *httpclient.UpstreamError
	if !stdErrors.As(err, &ue) {
		return errors.InternalServerError(err.Error())
	}

	var body struct {
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
	}
	if json.Unmarshal([]byte(ue.Body), &body) == nil {
		switch {
		case body.Message != "":
			return errors.InternalServerError(body.Message)
		case body.ErrorDescription != "":
			return errors.InternalServerError(body.ErrorDescription)
		}
	}
	return errors.InternalServerError(fmt.Sprintf("paypal responded %d: %s", ue.StatusCode, ue.Body))
}
