// Package acquirer implements the HTTP client for the acquiring bank.
package acquirer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/acquira/payment-gateway/internal/application"
	"github.com/acquira/payment-gateway/internal/config"
	"github.com/acquira/payment-gateway/internal/domain"
)

type HTTPBankClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewBankClient(cfg config.AcquirerConfig, logger *slog.Logger) *HTTPBankClient {
	return &HTTPBankClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
		logger: logger,
	}
}

var _ application.AcquiringBankClient = (*HTTPBankClient)(nil)

// Authorize performs a single round trip to the acquirer. No retries and no
// fallback; transport failures and server faults come back as *Error. Log
// lines carry the masked card only, never the full number or CVV.
func (c *HTTPBankClient) Authorize(ctx context.Context, req application.AuthorizationRequest) (*application.AuthorizationResult, error) {
	wireReq := BankPaymentRequest{
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate,
		Currency:   req.Currency,
		Amount:     req.Amount,
		Cvv:        req.CVV,
	}

	jsonData, err := json.Marshal(wireReq)
	if err != nil {
		return nil, &Error{Kind: KindUnreachable, Message: "error marshalling authorization request", Err: err}
	}

	url := fmt.Sprintf("%s/payments", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, &Error{Kind: KindUnreachable, Message: "error creating request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.logger.Debug("sending authorization request to acquirer",
		"card_last_four", domain.LastFour(req.CardNumber),
		"currency", req.Currency,
		"amount", req.Amount,
	)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("error connecting to acquirer", "error", err)
		return nil, &Error{Kind: KindUnreachable, Message: "error connecting to acquiring bank", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		io.Copy(io.Discard, resp.Body)
		c.logger.Error("acquirer service not available", "status", resp.StatusCode)
		return nil, &Error{Kind: KindUnavailable, Message: "acquiring bank service not available", StatusCode: resp.StatusCode}
	}

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		c.logger.Error("unexpected status from acquirer", "status", resp.StatusCode)
		return nil, &Error{Kind: KindUnreachable, Message: "unexpected status from acquiring bank", StatusCode: resp.StatusCode}
	}

	var wireResp BankPaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, &Error{Kind: KindUnreachable, Message: "error decoding acquiring bank response", Err: err}
	}

	result := &application.AuthorizationResult{
		Authorized: wireResp.Authorized,
	}
	if wireResp.AuthorizationCode != nil {
		result.AuthorizationCode = *wireResp.AuthorizationCode
	}

	c.logger.Debug("received authorization response", "authorized", result.Authorized)
	return result, nil
}
