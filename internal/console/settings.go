package console

import (
	"context"
	"strconv"
	"strings"

	"github.com/suyatrade/console/internal/api"
	"github.com/suyatrade/console/internal/logger"
	"github.com/suyatrade/console/internal/notify"
)

// Sell-strategy variants selectable in the strategy form.
const (
	SellFixedStop    = "fixed_stop"
	SellTrailingStop = "trailing_stop"
	SellMACross      = "ma_cross"
)

var SellStrategies = []string{SellFixedStop, SellTrailingStop, SellMACross}

// Moving-average time units selectable in the strategy form.
var MATimeUnits = []string{"minute", "daily", "weekly"}

// Defaults substituted when the backend omits or nulls a settings field.
const (
	defaultOrderAmount      = 100000
	defaultMaxItems         = 10
	defaultTargetProfit     = 5.0
	defaultStopLoss         = -3.0
	defaultTrailingStart    = 3.0
	defaultTrailingFall     = -1.0
	defaultTrailingBaseStop = -3.0
	defaultMATimeUnit       = "daily"
	defaultMATimeInterval   = 5
	defaultMAShort          = 5
	defaultMALong           = 20
)

// GeneralForm is the strategy settings form as the operator sees it:
// toggles as bools, numeric fields as the raw text of their inputs,
// enumerated fields as the selected option value.
type GeneralForm struct {
	AutotradeEnabled    bool
	OrderAmount         string
	MaxItems            string
	SellStrategyEnabled bool
	SellStrategy        string
	TargetProfit        string
	StopLoss            string
	TrailingStart       string
	TrailingFall        string
	TrailingBaseStop    string
	MATimeUnit          string
	MATimeInterval      string
	MAShort             string
	MALong              string
}

func (f *GeneralForm) hydrate(s *api.GeneralSettings) {
	f.AutotradeEnabled = boolOr(s.AutotradeEnabled, false)
	f.OrderAmount = formatInt(int64Or(s.OrderAmount, defaultOrderAmount))
	f.MaxItems = strconv.Itoa(intOr(s.MaxItems, defaultMaxItems))
	f.SellStrategyEnabled = boolOr(s.SellStrategyEnabled, false)
	f.SellStrategy = stringOr(s.SellStrategy, SellFixedStop)
	f.TargetProfit = formatFloat(floatOr(s.TargetProfit, defaultTargetProfit))
	f.StopLoss = formatFloat(floatOr(s.StopLoss, defaultStopLoss))
	f.TrailingStart = formatFloat(floatOr(s.TrailingStart, defaultTrailingStart))
	f.TrailingFall = formatFloat(floatOr(s.TrailingFall, defaultTrailingFall))
	f.TrailingBaseStop = formatFloat(floatOr(s.TrailingBaseStop, defaultTrailingBaseStop))
	f.MATimeUnit = stringOr(s.MATimeUnit, defaultMATimeUnit)
	f.MATimeInterval = strconv.Itoa(intOr(s.MATimeInterval, defaultMATimeInterval))
	f.MAShort = strconv.Itoa(intOr(s.MAShort, defaultMAShort))
	f.MALong = strconv.Itoa(intOr(s.MALong, defaultMALong))
}

// dehydrate assembles the full-replace save payload. Every field is sent;
// unparsable numeric input coerces to 0 and an unselected strategy falls
// back to fixed_stop.
func (f *GeneralForm) dehydrate() api.GeneralSettingsUpdate {
	strategy := f.SellStrategy
	if strategy == "" {
		strategy = SellFixedStop
	}

	return api.GeneralSettingsUpdate{
		AutotradeEnabled:    f.AutotradeEnabled,
		OrderAmount:         coerceInt64(f.OrderAmount),
		MaxItems:            coerceInt(f.MaxItems),
		SellStrategyEnabled: f.SellStrategyEnabled,
		SellStrategy:        strategy,
		TargetProfit:        coerceFloat(f.TargetProfit),
		StopLoss:            coerceFloat(f.StopLoss),
		TrailingStart:       coerceFloat(f.TrailingStart),
		TrailingFall:        coerceFloat(f.TrailingFall),
		TrailingBaseStop:    coerceFloat(f.TrailingBaseStop),
		MATimeUnit:          f.MATimeUnit,
		MATimeInterval:      coerceInt(f.MATimeInterval),
		MAShort:             coerceInt(f.MAShort),
		MALong:              coerceInt(f.MALong),
	}
}

// TelegramForm is the notification-channel settings form.
type TelegramForm struct {
	Enabled bool
	Token   string
	ChatID  string
}

func (f *TelegramForm) hydrate(s *api.TelegramSettings) {
	f.Enabled = s.Enabled
	f.Token = s.Token
	f.ChatID = s.ChatID
}

func (f *TelegramForm) dehydrate() api.TelegramSettings {
	return api.TelegramSettings{
		Enabled: f.Enabled,
		Token:   f.Token,
		ChatID:  f.ChatID,
	}
}

// GeneralSync round-trips the strategy settings between the backend and
// the strategy form.
type GeneralSync struct {
	client   *api.Client
	notifier notify.Notifier
	logger   *logger.Logger
}

func NewGeneralSync(client *api.Client, notifier notify.Notifier, log *logger.Logger) *GeneralSync {
	return &GeneralSync{client: client, notifier: notifier, logger: log}
}

// Load fetches the persisted settings and hydrates a form, substituting
// the documented default for every omitted or null field. A load failure
// is logged but raises no notification.
func (s *GeneralSync) Load(ctx context.Context) (*GeneralForm, error) {
	settings, err := s.client.GetGeneralSettings(ctx)
	if err != nil {
		s.logger.Warn("load general settings", "error", err)
		return nil, err
	}

	form := &GeneralForm{}
	form.hydrate(settings)
	return form, nil
}

// Save sends the whole settings object, replacing whatever the backend
// holds.
func (s *GeneralSync) Save(ctx context.Context, form GeneralForm) error {
	if err := s.client.PutGeneralSettings(ctx, form.dehydrate()); err != nil {
		s.logger.Error("save general settings", "error", err)
		s.notifier.Notify("strategy settings save failed", false)
		return err
	}

	s.notifier.Notify("strategy settings saved", true)
	return nil
}

// TelegramSync round-trips the notification-channel settings.
type TelegramSync struct {
	client   *api.Client
	notifier notify.Notifier
	logger   *logger.Logger
}

func NewTelegramSync(client *api.Client, notifier notify.Notifier, log *logger.Logger) *TelegramSync {
	return &TelegramSync{client: client, notifier: notifier, logger: log}
}

// Load fetches the channel settings. A 404 means nothing has been saved
// yet; it returns (nil, nil) so the form stays untouched, with no
// notification.
func (s *TelegramSync) Load(ctx context.Context) (*TelegramForm, error) {
	settings, err := s.client.GetTelegramSettings(ctx)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, nil
		}
		s.logger.Warn("load telegram settings", "error", err)
		return nil, err
	}

	form := &TelegramForm{}
	form.hydrate(settings)
	return form, nil
}

func (s *TelegramSync) Save(ctx context.Context, form TelegramForm) error {
	if err := s.client.PutTelegramSettings(ctx, form.dehydrate()); err != nil {
		s.logger.Error("save telegram settings", "error", err)
		s.notifier.Notify("telegram settings save failed", false)
		return err
	}

	s.notifier.Notify("telegram settings saved", true)
	return nil
}

// Default-substitution helpers for hydrate.

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func int64Or(v *int64, def int64) int64 {
	if v == nil {
		return def
	}
	return *v
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func stringOr(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Numeric coercion for dehydrate: fields are parsed the way a lenient
// number input would, with 0 for anything unparsable.

func coerceFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func coerceInt(s string) int {
	return int(coerceFloat(s))
}

func coerceInt64(s string) int64 {
	return int64(coerceFloat(s))
}
