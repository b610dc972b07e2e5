package pricing

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var displayLocale = language.MustParse("es-AR")

// FormatCurrency renders a canonical price for display ("$ 1.234,5").
// Fraction digits are optional up to two. Non-numeric input renders as $ 0.
func FormatCurrency(value any) string {
	f, ok := toFloat(value)
	if !ok {
		if s, isString := value.(string); isString {
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
				f, ok = toFloat(parsed)
			}
		}
	}
	if !ok {
		f = 0
	}

	p := message.NewPrinter(displayLocale)
	return "$ " + p.Sprint(number.Decimal(f, number.MinFractionDigits(0), number.MaxFractionDigits(2)))
}
