package console

import (
	"context"
	"errors"
	"strings"

	"github.com/suyatrade/console/internal/api"
	"github.com/suyatrade/console/internal/logger"
	"github.com/suyatrade/console/internal/notify"
)

// ErrInvalidOrder marks client-side validation failures; no request was
// made.
var ErrInvalidOrder = errors.New("invalid order input")

type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// OrderForm is one side's manual order form. Buy and sell keep separate
// instances.
type OrderForm struct {
	Code   string
	Qty    string
	Market bool
	Price  string
}

// OrderSubmitter validates and submits manual buy/sell instructions. The
// broker response is logged, never rendered.
type OrderSubmitter struct {
	client   *api.Client
	notifier notify.Notifier
	logger   *logger.Logger
}

func NewOrderSubmitter(client *api.Client, notifier notify.Notifier, log *logger.Logger) *OrderSubmitter {
	return &OrderSubmitter{client: client, notifier: notifier, logger: log}
}

// Submit validates the form and posts the order to the side-specific
// endpoint. An empty code or non-positive quantity fails fast with a
// validation notification and no network call. This guard is a
// convenience for the operator, not a substitute for backend validation.
func (s *OrderSubmitter) Submit(ctx context.Context, side Side, form OrderForm) error {
	code := strings.TrimSpace(form.Code)
	qty := coerceInt(form.Qty)
	if code == "" || qty <= 0 {
		s.notifier.Notify("check the stock code and quantity", false)
		return ErrInvalidOrder
	}

	req := api.OrderRequest{
		Code:   code,
		Qty:    qty,
		Market: form.Market,
		Price:  coerceInt64(form.Price),
	}

	var (
		result *api.OrderResult
		err    error
	)
	if side == SideBuy {
		result, err = s.client.BuyStock(ctx, req)
	} else {
		result, err = s.client.SellStock(ctx, req)
	}

	if err != nil {
		s.logger.Error("manual order", "side", side, "code", code, "error", err)
		s.notifier.Notify(string(side)+" order failed", false)
		return err
	}

	s.logger.Info("manual order submitted",
		"side", side, "code", code, "qty", qty, "status", result.StatusCode)
	s.notifier.Notify(string(side)+" order submitted", true)
	return nil
}
