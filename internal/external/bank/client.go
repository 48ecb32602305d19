// Package bank implements the verification oracle client against the
// bank transaction API.
package bank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"disputeresolver/internal/domain/dispute"
)

const defaultTimeout = 5 * time.Second

// Client calls the bank transaction lookup endpoint. A single attempt
// per check; callers treat any returned error as oracle unavailability.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a bank client. A nil httpClient gets the default timeout.
func New(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpClient,
	}
}

type transactionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *struct {
		TransactionID string  `json:"transaction_id"`
		Amount        float64 `json:"amount"`
		Status        string  `json:"status"`
	} `json:"data"`
}

// Check fetches the bank's record of the transaction.
func (c *Client) Check(ctx context.Context, transactionRef string) (dispute.VerificationResult, error) {
	url := c.baseURL + "/bank/transaction/" + transactionRef

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return dispute.VerificationResult{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return dispute.VerificationResult{}, fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode/100 != 2 {
		return dispute.VerificationResult{}, fmt.Errorf("bank api %s: %s", resp.Status, string(raw))
	}

	var out transactionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return dispute.VerificationResult{}, fmt.Errorf("decode response: %w", err)
	}
	if out.Data == nil {
		return dispute.VerificationResult{}, fmt.Errorf("bank api: empty payload: %s", out.Message)
	}

	return dispute.VerificationResult{
		Status: out.Data.Status,
		Amount: out.Data.Amount,
	}, nil
}
