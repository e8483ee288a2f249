package api

// AccountSummary is the consolidated account snapshot. OK is a pointer
// because the backend may omit it entirely; only an explicit false marks
// the snapshot as partially collected.
type AccountSummary struct {
	Deposit       int64    `json:"deposit"`
	Orderable     int64    `json:"orderable"`
	TodayRealized int64    `json:"today_realized"`
	TotalPurchase int64    `json:"total_purchase"`
	TotalEval     int64    `json:"total_eval"`
	TotalPL       int64    `json:"total_pl"`
	TotalReturn   float64  `json:"total_return"`
	OK            *bool    `json:"ok,omitempty"`
	Errors        []string `json:"errors,omitempty"`
}

// Partial reports whether the backend flagged the snapshot as incomplete.
// An absent flag counts as success.
func (s *AccountSummary) Partial() bool {
	return s.OK != nil && !*s.OK
}

// GeneralSettings is the strategy settings wire shape as loaded from the
// backend. Every field is a pointer so that omitted and null values can be
// told apart from real zeroes and replaced with their defaults.
type GeneralSettings struct {
	AutotradeEnabled    *bool    `json:"autotrade_enabled"`
	OrderAmount         *int64   `json:"order_amount"`
	MaxItems            *int     `json:"max_items"`
	SellStrategyEnabled *bool    `json:"sell_strategy_enabled"`
	SellStrategy        *string  `json:"sell_strategy"`
	TargetProfit        *float64 `json:"target_profit"`
	StopLoss            *float64 `json:"stop_loss"`
	TrailingStart       *float64 `json:"trailing_start"`
	TrailingFall        *float64 `json:"trailing_fall"`
	TrailingBaseStop    *float64 `json:"trailing_base_stoploss"`
	MATimeUnit          *string  `json:"ma_time_unit"`
	MATimeInterval      *int     `json:"ma_time_interval"`
	MAShort             *int     `json:"ma_short"`
	MALong              *int     `json:"ma_long"`
}

// GeneralSettingsUpdate is the full-replace save payload: same wire shape
// as GeneralSettings but with every field present and concrete.
type GeneralSettingsUpdate struct {
	AutotradeEnabled    bool    `json:"autotrade_enabled"`
	OrderAmount         int64   `json:"order_amount"`
	MaxItems            int     `json:"max_items"`
	SellStrategyEnabled bool    `json:"sell_strategy_enabled"`
	SellStrategy        string  `json:"sell_strategy"`
	TargetProfit        float64 `json:"target_profit"`
	StopLoss            float64 `json:"stop_loss"`
	TrailingStart       float64 `json:"trailing_start"`
	TrailingFall        float64 `json:"trailing_fall"`
	TrailingBaseStop    float64 `json:"trailing_base_stoploss"`
	MATimeUnit          string  `json:"ma_time_unit"`
	MATimeInterval      int     `json:"ma_time_interval"`
	MAShort             int     `json:"ma_short"`
	MALong              int     `json:"ma_long"`
}

type TelegramSettings struct {
	Enabled bool   `json:"enabled"`
	Token   string `json:"token"`
	ChatID  string `json:"chat_id"`
}

type OrderRequest struct {
	Code   string `json:"code"`
	Qty    int    `json:"qty"`
	Market bool   `json:"market"`
	Price  int64  `json:"price"`
}

// OrderResult wraps the broker's response as relayed by the backend. It is
// informational only; nothing in the console renders it.
type OrderResult struct {
	StatusCode int            `json:"status_code"`
	Response   map[string]any `json:"response"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	OK      bool   `json:"ok"`
	Service string `json:"service"`
}

type TokenDebug struct {
	OK          bool   `json:"ok"`
	TokenPrefix string `json:"token_prefix"`
}

type TokenIssue struct {
	StatusCode int `json:"status_code"`
	Response   struct {
		Token string `json:"token"`
	} `json:"response"`
}
