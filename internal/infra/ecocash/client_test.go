package ecocash

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"musika/config"
	domainerrors "musika/internal/domain/errors"
	"musika/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) service.PaymentGateway {
	t.Helper()

	cfg := &config.Config{
		EcoCash: &config.EcoCashConfig{
			BaseURL:  baseURL,
			Endpoint: "/api/v2/payment/instant/c2b",
			APIKey:   "test-key",
			Currency: "USD",
			Reason:   "Online purchase",
			Timeout:  5 * time.Second,
		},
	}

	gateway, err := NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return gateway
}

func TestInitiatePayment_Success(t *testing.T) {
	var captured paymentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v2/payment/instant/c2b", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-KEY"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gateway := newTestClient(t, server.URL)

	err := gateway.InitiatePayment(context.Background(), &service.PaymentRequest{
		Phone:     "263771234567",
		Amount:    decimal.NewFromFloat(25.5),
		Reference: "txn-123",
	})

	require.NoError(t, err)
	assert.Equal(t, "263771234567", captured.CustomerMsisdn)
	assert.Equal(t, "25.50", captured.Amount)
	assert.Equal(t, "USD", captured.Currency)
	assert.Equal(t, "txn-123", captured.SourceReference)
}

func TestInitiatePayment_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Insufficient funds"})
	}))
	defer server.Close()

	gateway := newTestClient(t, server.URL)

	err := gateway.InitiatePayment(context.Background(), &service.PaymentRequest{
		Phone:     "263771234567",
		Amount:    decimal.NewFromInt(100),
		Reference: "txn-456",
	})

	require.Error(t, err)

	var gatewayErr *domainerrors.GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, http.StatusPaymentRequired, gatewayErr.StatusCode)
	assert.Equal(t, "Insufficient funds", gatewayErr.Upstream)
	assert.Equal(t, http.StatusPaymentRequired, gatewayErr.HTTPCode())
}

func TestInitiatePayment_TransportError(t *testing.T) {
	// Point at a closed server so the request fails at the transport level.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	gateway := newTestClient(t, server.URL)

	err := gateway.InitiatePayment(context.Background(), &service.PaymentRequest{
		Phone:     "263771234567",
		Amount:    decimal.NewFromInt(10),
		Reference: "txn-789",
	})

	require.Error(t, err)

	var gatewayErr *domainerrors.GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, http.StatusBadGateway, gatewayErr.HTTPCode())
}

func TestInitiatePayment_RawBodyFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("gateway exploded"))
	}))
	defer server.Close()

	gateway := newTestClient(t, server.URL)

	err := gateway.InitiatePayment(context.Background(), &service.PaymentRequest{
		Phone:     "263771234567",
		Amount:    decimal.NewFromInt(10),
		Reference: "txn-000",
	})

	var gatewayErr *domainerrors.GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, "gateway exploded", gatewayErr.Upstream)
}
