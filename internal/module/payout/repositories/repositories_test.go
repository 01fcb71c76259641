package repositories_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homezy-service/config"
	"homezy-service/internal/module/payout/models/entity"
	"homezy-service/internal/module/payout/repositories"
	customErrors "homezy-service/internal/pkg/errors"
	"homezy-service/internal/pkg/httpclient"
	log_internal "homezy-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

func newRepo(baseURL, id, secret string, db *sqlx.DB) repositories.Repositories {
	hcCfg := &config.HttpClientConfig{Timeout: 2 * time.Second, ConsecutiveFailures: 5}
	hc := httpclient.InitHttpClient(hcCfg, httpclient.InitCircuitBreaker(hcCfg, httpclient.BreakerConsecutive))
	cfg := &config.PayPalConfig{BaseURL: baseURL, ClientID: id, ClientSecret: secret, Currency: "PHP"}
	return repositories.New(cfg, db, log_internal.Setup(), hc)
}

func TestGetAccessToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/oauth2/token", r.URL.Path)
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "client", user)
			assert.Equal(t, "secret", pass)
			assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, "grant_type=client_credentials", string(body))
			_, _ = w.Write([]byte(`{"access_token":"A21AA","token_type":"Bearer"}`))
		}))
		defer srv.Close()

		token, err := newRepo(srv.URL, "client", "secret", nil).GetAccessToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "A21AA", token)
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, err := newRepo("http://unused", "", "", nil).GetAccessToken(context.Background())
		assert.Equal(t, http.StatusInternalServerError, customErrors.Code(err))
		assert.Contains(t, err.Error(), "PAYPAL_CLIENT_ID")
	})

	t.Run("rejected credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid_client","error_description":"Client Authentication failed"}`))
		}))
		defer srv.Close()

		_, err := newRepo(srv.URL, "client", "wrong", nil).GetAccessToken(context.Background())
		assert.EqualError(t, err, "Client Authentication failed")
	})
}

func TestCreatePayout(t *testing.T) {
	batch := entity.PayoutBatch{
		SenderBatchHeader: entity.SenderBatchHeader{SenderBatchID: "batch-1", EmailSubject: "payout"},
		Items: []entity.PayoutItem{{
			RecipientType: "EMAIL",
			Amount:        entity.Amount{Value: "1500.00", Currency: "PHP"},
			Receiver:      "host@homezy.app",
			SenderItemID:  "h1",
		}},
	}

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/payments/payouts", r.URL.Path)
			assert.Equal(t, "Bearer A21AA", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(body), `"sender_batch_id":"batch-1"`)
			assert.Contains(t, string(body), `"value":"1500.00"`)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"batch_header":{"payout_batch_id":"PB1","batch_status":"PENDING"}}`))
		}))
		defer srv.Close()

		result, err := newRepo(srv.URL, "client", "secret", nil).CreatePayout(context.Background(), "A21AA", batch)
		require.NoError(t, err)
		assert.Equal(t, "PB1", result.BatchHeader.PayoutBatchID)
		assert.Equal(t, "PENDING", result.BatchHeader.BatchStatus)
	})

	t.Run("upstream rejects", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"name":"INSUFFICIENT_FUNDS","message":"Sender does not have sufficient funds."}`))
		}))
		defer srv.Close()

		_, err := newRepo(srv.URL, "client", "secret", nil).CreatePayout(context.Background(), "A21AA", batch)
		assert.EqualError(t, err, "Sender does not have sufficient funds.")
	})

	t.Run("upstream rejects without json", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`bad gateway`))
		}))
		defer srv.Close()

		_, err := newRepo(srv.URL, "client", "secret", nil).CreatePayout(context.Background(), "A21AA", batch)
		assert.EqualError(t, err, "paypal responded 502: bad gateway")
	})
}

func TestInsertPayout(t *testing.T) {
	payout := entity.Payout{ID: "p1", HostUID: "h1", Email: "host@homezy.app", Amount: 1500, Currency: "PHP", BatchID: "PB1", Status: "PENDING", CreatedAt: time.Now()}

	t.Run("success", func(t *testing.T) {
		dbx, mock, err := sqlxmock.Newx()
		require.NoError(t, err)
		mock.ExpectExec(`INSERT INTO payouts`).WillReturnResult(sqlxmock.NewResult(0, 1))

		require.NoError(t, newRepo("x", "c", "s", dbx).InsertPayout(context.Background(), payout))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		dbx, mock, err := sqlxmock.Newx()
		require.NoError(t, err)
		mock.ExpectExec(`INSERT INTO payouts`).WillReturnError(errors.New("connection reset"))

		err = newRepo("x", "c", "s", dbx).InsertPayout(context.Background(), payout)
		assert.EqualError(t, err, "error insert payout")
	})
}

func TestAvailableBalance(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		dbx, mock, err := sqlxmock.Newx()
		require.NoError(t, err)
		mock.ExpectQuery(`(?s)FROM transactions(.+)FROM payouts`).
			WithArgs("h1").
			WillReturnRows(sqlxmock.NewRows([]string{"balance"}).AddRow(1250.5))

		balance, err := newRepo("x", "c", "s", dbx).AvailableBalance(context.Background(), "h1")
		require.NoError(t, err)
		assert.Equal(t, 1250.5, balance)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		dbx, mock, err := sqlxmock.Newx()
		require.NoError(t, err)
		mock.ExpectQuery(`(?s)FROM transactions(.+)FROM payouts`).WillReturnError(errors.New("connection reset"))

		_, err = newRepo("x", "c", "s", dbx).AvailableBalance(context.Background(), "h1")
		assert.EqualError(t, err, "error get available balance")
	})
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "PHP", newRepo("x", "c", "s", nil).Currency())
}
