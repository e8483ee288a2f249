package tui

import (
	"github.com/suyatrade/console/internal/console"
)

// Form constructors and the mapping between TUI forms and the typed
// console view-models. Field keys match the wire field names so the two
// stay easy to diff against each other.

func newStrategyForm() *form {
	return newForm(
		toggleField("autotrade_enabled", "Autotrade", false),
		textField("order_amount", "Order amount", ""),
		textField("max_items", "Max positions", ""),
		toggleField("sell_strategy_enabled", "Sell strategy", false),
		choiceField("sell_strategy", "Sell variant", console.SellStrategies, console.SellFixedStop),
		textField("target_profit", "Target profit %", ""),
		textField("stop_loss", "Stop loss %", ""),
		textField("trailing_start", "Trailing start %", ""),
		textField("trailing_fall", "Trailing fall %", ""),
		textField("trailing_base_stoploss", "Trailing base stop %", ""),
		choiceField("ma_time_unit", "MA time unit", console.MATimeUnits, "daily"),
		textField("ma_time_interval", "MA interval", ""),
		textField("ma_short", "MA short window", ""),
		textField("ma_long", "MA long window", ""),
		buttonField("Save strategy", actionSaveGeneral),
	)
}

func applyGeneralForm(f *form, src *console.GeneralForm) {
	f.get("autotrade_enabled").on = src.AutotradeEnabled
	f.setValue("order_amount", src.OrderAmount)
	f.setValue("max_items", src.MaxItems)
	f.get("sell_strategy_enabled").on = src.SellStrategyEnabled
	setChoice(f, "sell_strategy", src.SellStrategy)
	f.setValue("target_profit", src.TargetProfit)
	f.setValue("stop_loss", src.StopLoss)
	f.setValue("trailing_start", src.TrailingStart)
	f.setValue("trailing_fall", src.TrailingFall)
	f.setValue("trailing_base_stoploss", src.TrailingBaseStop)
	setChoice(f, "ma_time_unit", src.MATimeUnit)
	f.setValue("ma_time_interval", src.MATimeInterval)
	f.setValue("ma_short", src.MAShort)
	f.setValue("ma_long", src.MALong)
}

func toGeneralForm(f *form) console.GeneralForm {
	return console.GeneralForm{
		AutotradeEnabled:    f.get("autotrade_enabled").on,
		OrderAmount:         f.value("order_amount"),
		MaxItems:            f.value("max_items"),
		SellStrategyEnabled: f.get("sell_strategy_enabled").on,
		SellStrategy:        f.get("sell_strategy").selected(),
		TargetProfit:        f.value("target_profit"),
		StopLoss:            f.value("stop_loss"),
		TrailingStart:       f.value("trailing_start"),
		TrailingFall:        f.value("trailing_fall"),
		TrailingBaseStop:    f.value("trailing_base_stoploss"),
		MATimeUnit:          f.get("ma_time_unit").selected(),
		MATimeInterval:      f.value("ma_time_interval"),
		MAShort:             f.value("ma_short"),
		MALong:              f.value("ma_long"),
	}
}

func newTelegramForm() *form {
	return newForm(
		toggleField("enabled", "Notifications", false),
		textField("token", "Bot token", ""),
		textField("chat_id", "Chat ID", ""),
		buttonField("Save telegram", actionSaveTelegram),
	)
}

func applyTelegramForm(f *form, src *console.TelegramForm) {
	f.get("enabled").on = src.Enabled
	f.setValue("token", src.Token)
	f.setValue("chat_id", src.ChatID)
}

func toTelegramForm(f *form) console.TelegramForm {
	return console.TelegramForm{
		Enabled: f.get("enabled").on,
		Token:   f.value("token"),
		ChatID:  f.value("chat_id"),
	}
}

// The manual order tab holds both side-specific field sets; the side is
// picked by which submit button fires.
func newOrderForm() *form {
	return newForm(
		textField("buy_code", "Buy code", ""),
		textField("buy_qty", "Buy quantity", ""),
		toggleField("buy_market", "Buy at market", true),
		textField("buy_price", "Buy limit price", ""),
		buttonField("Submit buy", actionSubmitBuy),
		textField("sell_code", "Sell code", ""),
		textField("sell_qty", "Sell quantity", ""),
		toggleField("sell_market", "Sell at market", true),
		textField("sell_price", "Sell limit price", ""),
		buttonField("Submit sell", actionSubmitSell),
	)
}

func toOrderForm(f *form, side console.Side) console.OrderForm {
	prefix := "buy_"
	if side == console.SideSell {
		prefix = "sell_"
	}
	return console.OrderForm{
		Code:   f.value(prefix + "code"),
		Qty:    f.value(prefix + "qty"),
		Market: f.get(prefix + "market").on,
		Price:  f.value(prefix + "price"),
	}
}

func newDiagForm() *form {
	return newForm(
		buttonField("Ping backend", actionPing),
		buttonField("Check token", actionCheckToken),
		buttonField("Issue token", actionIssueToken),
	)
}

func setChoice(f *form, key, value string) {
	fl := f.get(key)
	for i, c := range fl.choices {
		if c == value {
			fl.choice = i
			return
		}
	}
}
