package console

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Korean)

// Money renders a monetary amount as a digit-grouped integer with the
// configured currency suffix, e.g. "1,000,000 KRW".
func Money(n int64, suffix string) string {
	return printer.Sprintf("%d", n) + " " + suffix
}

// Percent renders a rate to two decimal places, e.g. "3.14 %".
func Percent(v float64) string {
	return fmt.Sprintf("%.2f %%", v)
}
