package httpclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"pnl_tracker/internal/domain"
)

// BalanceFeedClient asks the balance feed for an exchange account's total in the display currency.
type BalanceFeedClient struct {
	client  *resty.Client
	baseURL string
}

type balanceResponse struct {
	Exchange string   `json:"exchange"`
	Total    *float64 `json:"total"`
}

func NewBalanceFeedClient(baseURL string, opts ...func(*resty.Client)) (*BalanceFeedClient, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("baseURL is required")
	}

	client := resty.New().
		SetHeader("Accept", "application/json").
		SetTimeout(15 * time.Second)

	for _, opt := range opts {
		opt(client)
	}

	return &BalanceFeedClient{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (c *BalanceFeedClient) FetchBalance(ctx context.Context, key domain.ExchangeAPIKey) (float64, error) {
	var payload balanceResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("X-API-Key", key.APIKey).
		SetHeader("X-API-Secret", key.APISecret).
		SetResult(&payload).
		Get(c.baseURL + "/balances/" + url.PathEscape(key.ExchangeName))
	if err != nil {
		return 0, fmt.Errorf("fetch balance: %w", err)
	}

	if resp.StatusCode() >= 400 {
		return 0, fmt.Errorf("feed responded with status %d", resp.StatusCode())
	}
	if payload.Total == nil {
		return 0, fmt.Errorf("feed response for %s has no total", key.ExchangeName)
	}
	if *payload.Total < 0 {
		return 0, fmt.Errorf("feed reported a negative balance for %s", key.ExchangeName)
	}

	return *payload.Total, nil
}
