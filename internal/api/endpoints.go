package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	healthPath          = "/api/health"
	tokenPath           = "/api/token"
	tokenDebugPath      = "/api/token/debug"
	accountSummaryPath  = "/api/account/summary"
	generalSettingsPath = "/api/settings/general"
	telegramPath        = "/api/settings/telegram"
	buyOrderPath        = "/api/orders/stock/buy"
	sellOrderPath       = "/api/orders/stock/sell"
)

func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	out := &HealthStatus{}
	if err := c.do(ctx, http.MethodGet, healthPath, nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TokenDebug(ctx context.Context) (*TokenDebug, error) {
	out := &TokenDebug{}
	if err := c.do(ctx, http.MethodGet, tokenDebugPath, nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// IssueToken forces the backend to fetch a fresh broker access token.
func (c *Client) IssueToken(ctx context.Context) (*TokenIssue, error) {
	out := &TokenIssue{}
	if err := c.do(ctx, http.MethodPost, tokenPath, nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AccountSummary(ctx context.Context) (*AccountSummary, error) {
	out := &AccountSummary{}
	if err := c.do(ctx, http.MethodGet, accountSummaryPath, nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetGeneralSettings(ctx context.Context) (*GeneralSettings, error) {
	out := &GeneralSettings{}
	if err := c.do(ctx, http.MethodGet, generalSettingsPath, nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PutGeneralSettings(ctx context.Context, s GeneralSettingsUpdate) error {
	return c.do(ctx, http.MethodPut, generalSettingsPath, nil, s, nil)
}

func (c *Client) GetTelegramSettings(ctx context.Context) (*TelegramSettings, error) {
	out := &TelegramSettings{}
	if err := c.do(ctx, http.MethodGet, telegramPath, nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PutTelegramSettings(ctx context.Context, s TelegramSettings) error {
	return c.do(ctx, http.MethodPut, telegramPath, nil, s, nil)
}

func (c *Client) BuyStock(ctx context.Context, req OrderRequest) (*OrderResult, error) {
	return c.submitOrder(ctx, buyOrderPath, req)
}

func (c *Client) SellStock(ctx context.Context, req OrderRequest) (*OrderResult, error) {
	return c.submitOrder(ctx, sellOrderPath, req)
}

// submitOrder posts an order with a fresh idempotency key so an ambiguous
// network failure cannot double-execute on a blind operator resubmit.
func (c *Client) submitOrder(ctx context.Context, path string, req OrderRequest) (*OrderResult, error) {
	headers := map[string]string{"X-Idempotency-Key": uuid.NewString()}
	out := &OrderResult{}
	if err := c.do(ctx, http.MethodPost, path, headers, req, out); err != nil {
		return nil, err
	}
	return out, nil
}
