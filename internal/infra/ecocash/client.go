// Package ecocash implements the PaymentGateway interface against the
// EcoCash instant C2B payment API.
package ecocash

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"musika/config"
	domainerrors "musika/internal/domain/errors"
	"musika/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// client calls the EcoCash payment-initiation endpoint. The call is
// synchronous with a single bounded attempt; failures abort order creation
// and surface the upstream error verbatim, with no retry.
type client struct {
	baseURL    string
	endpoint   string
	apiKey     string
	currency   string
	reason     string
	httpClient *http.Client
	logger     *slog.Logger
}

// paymentRequest is the wire payload for a payment initiation.
type paymentRequest struct {
	CustomerMsisdn  string `json:"customerMsisdn"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	Reason          string `json:"reason"`
	SourceReference string `json:"sourceReference"`
}

// errorResponse is the upstream error payload shape.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// NewClient creates an EcoCash gateway client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	ecoCfg := cfg.EcoCash
	if ecoCfg == nil {
		return nil, errors.New("ecocash configuration is missing")
	}

	timeout := ecoCfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &client{
		baseURL:  ecoCfg.BaseURL,
		endpoint: ecoCfg.Endpoint,
		apiKey:   ecoCfg.APIKey,
		currency: ecoCfg.Currency,
		reason:   ecoCfg.Reason,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// InitiatePayment requests a customer charge. The transaction reference is
// used as the idempotency key on the gateway side.
func (c *client) InitiatePayment(ctx context.Context, req *service.PaymentRequest) error {
	payload := paymentRequest{
		CustomerMsisdn:  req.Phone,
		Amount:          req.Amount.StringFixed(2),
		Currency:        c.currency,
		Reason:          c.reason,
		SourceReference: req.Reference,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-API-KEY", c.apiKey)

	c.logger.Info("Initiating EcoCash payment",
		slog.String("reference", req.Reference),
		slog.String("amount", payload.Amount),
	)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// Transport failure: no upstream status to pass through.
		return domainerrors.NewGatewayError(0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domainerrors.NewGatewayError(resp.StatusCode, readUpstreamError(resp.Body))
	}

	c.logger.Info("EcoCash payment initiated",
		slog.String("reference", req.Reference),
	)

	return nil
}

// readUpstreamError extracts the upstream error message, falling back to the
// raw body when it is not the expected JSON shape.
func readUpstreamError(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return "no error detail from gateway"
	}

	var parsed errorResponse
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}

	return string(raw)
}
