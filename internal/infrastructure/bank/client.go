package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"payment-gateway/internal/domain/entities"
	"payment-gateway/internal/usecase/interfaces"
)

const (
	defaultBankAPIURL    = "http://localhost:8081/payments"
	defaultBankTimeoutMS = 5000
)

// Client calls the acquiring bank's HTTP authorization endpoint.
//
// The core contract defines no timeout; the one configured here is a
// deployment concern (BANK_TIMEOUT_MS). Failures are classified into the
// interfaces sentinel errors and surfaced immediately; no retries.

type Client struct {
	httpClient *http.Client
	apiURL     string
}

var _ interfaces.IAcquiringBank = (*Client)(nil)

// NewClient builds a bank client from environment variables:
//   - BANK_API_URL (default http://localhost:8081/payments)
//   - BANK_TIMEOUT_MS (default 5000)
func NewClient() *Client {
	timeout := defaultBankTimeoutMS
	if v := os.Getenv("BANK_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			timeout = ms
		}
	}

	apiURL := getenvDefault("BANK_API_URL", defaultBankAPIURL)
	log.Printf("[bank][client] initialized url=%s timeout_ms=%d", apiURL, timeout)

	return &Client{
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 50,
				IdleConnTimeout:     30 * time.Second,
			},
			Timeout: time.Duration(timeout) * time.Millisecond,
		},
		apiURL: apiURL,
	}
}

func (c *Client) Authorize(ctx context.Context, req entities.BankPaymentRequest, paymentID string) (entities.BankPaymentResponse, error) {
	log.Printf("[bank][client] authorize start payment_id=%s amount=%d currency=%s", paymentID, req.Amount, req.Currency)

	body, err := json.Marshal(req)
	if err != nil {
		return entities.BankPaymentResponse{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return entities.BankPaymentResponse{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[bank][client] transport failure payment_id=%s err=%v", paymentID, err)
		return entities.BankPaymentResponse{}, fmt.Errorf("%w: %v", interfaces.ErrBankUnreachable, err)
	}
	defer resp.Body.Close()

	log.Printf("[bank][client] response received payment_id=%s status_code=%d", paymentID, resp.StatusCode)

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		log.Printf("[bank][client] client error payment_id=%s status_code=%d", paymentID, resp.StatusCode)
		return entities.BankPaymentResponse{}, fmt.Errorf("%w: status %d", interfaces.ErrBankClientError, resp.StatusCode)
	case resp.StatusCode >= 500:
		log.Printf("[bank][client] server error payment_id=%s status_code=%d", paymentID, resp.StatusCode)
		return entities.BankPaymentResponse{}, fmt.Errorf("%w: status %d", interfaces.ErrBankServerError, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.BankPaymentResponse{}, fmt.Errorf("%w: reading response: %v", interfaces.ErrBankUnreachable, err)
	}

	var bankResp entities.BankPaymentResponse
	if err := json.Unmarshal(raw, &bankResp); err != nil {
		log.Printf("[bank][client] response unmarshal failed payment_id=%s err=%v", paymentID, err)
		return entities.BankPaymentResponse{}, fmt.Errorf("%w: decoding response: %v", interfaces.ErrBankServerError, err)
	}

	log.Printf("[bank][client] authorize success payment_id=%s authorized=%t", paymentID, bankResp.Authorized)
	return bankResp, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
