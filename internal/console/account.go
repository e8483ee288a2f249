package console

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/suyatrade/console/internal/api"
	"github.com/suyatrade/console/internal/logger"
	"github.com/suyatrade/console/internal/notify"
)

// ErrRefreshInFlight is returned when a refresh is requested while one is
// already outstanding. Callers treat it as a no-op, not a failure.
var ErrRefreshInFlight = errors.New("account refresh already in flight")

// AccountView holds the formatted display values projected from one
// account snapshot. It is discarded after rendering; nothing is cached.
type AccountView struct {
	Deposit       string
	Orderable     string
	TodayRealized string
	TotalPurchase string
	TotalEval     string
	TotalPL       string
	TotalReturn   string
	Partial       bool
}

// AccountSync fetches the consolidated account snapshot and projects it
// onto display values. Refreshes are single-flight: concurrent triggers
// collapse into the one already running.
type AccountSync struct {
	client   *api.Client
	notifier notify.Notifier
	logger   *logger.Logger
	suffix   string

	inFlight atomic.Bool
}

func NewAccountSync(client *api.Client, notifier notify.Notifier, currencySuffix string, log *logger.Logger) *AccountSync {
	return &AccountSync{
		client:   client,
		notifier: notifier,
		logger:   log,
		suffix:   currencySuffix,
	}
}

// InFlight reports whether a refresh is currently outstanding.
func (s *AccountSync) InFlight() bool {
	return s.inFlight.Load()
}

// Refresh fetches the account snapshot and returns its display view.
//
// A duplicate call while one refresh is outstanding returns
// ErrRefreshInFlight without touching the network. The in-flight flag is
// released on every exit path. A backend snapshot carrying an explicit
// ok=false still yields a view (partial data is rendered, not discarded)
// but raises a degraded-success notification; a transport error yields no
// view so previous display values stay untouched.
func (s *AccountSync) Refresh(ctx context.Context) (*AccountView, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrRefreshInFlight
	}
	defer s.inFlight.Store(false)

	summary, err := s.client.AccountSummary(ctx)
	if err != nil {
		s.logger.Error("account summary fetch", "error", err)
		s.notifier.Notify("account summary refresh failed", false)
		return nil, err
	}

	view := &AccountView{
		Deposit:       Money(summary.Deposit, s.suffix),
		Orderable:     Money(summary.Orderable, s.suffix),
		TodayRealized: Money(summary.TodayRealized, s.suffix),
		TotalPurchase: Money(summary.TotalPurchase, s.suffix),
		TotalEval:     Money(summary.TotalEval, s.suffix),
		TotalPL:       Money(summary.TotalPL, s.suffix),
		TotalReturn:   Percent(summary.TotalReturn),
		Partial:       summary.Partial(),
	}

	if view.Partial {
		s.logger.Warn("account summary partially collected", "errors", summary.Errors)
		s.notifier.Notify("some account items failed to collect (see log)", false)
	} else {
		s.notifier.Notify("account summary refreshed", true)
	}

	return view, nil
}
