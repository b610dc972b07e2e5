// Package pricing normalizes the price representations found in the remote
// catalog. Rows come both from locale-formatted spreadsheet exports
// ("$1.234,50") and from direct numeric entry ("11500.0"), so parsing has two
// modes selected by the shape of the string.
package pricing

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// decimalSuffix matches strings that end in a dot followed by one or two
// digits. Those are read as plain decimals; everything else is read with the
// "dot for thousands, comma for decimals" convention.
var decimalSuffix = regexp.MustCompile(`\.\d{1,2}$`)

var thousandsReplacer = strings.NewReplacer("$", "", ".", "", " ", "", " ", "")

// ParsePrice coerces a raw catalog value into a canonical price.
// Any value that cannot be interpreted yields 0.
func ParsePrice(raw any) float64 {
	return Money(raw).InexactFloat64()
}

// Money is ParsePrice returning a decimal, used where sums must not drift.
func Money(raw any) decimal.Decimal {
	switch v := raw.(type) {
	case nil:
		return decimal.Zero
	case string:
		return parseString(v)
	case json.Number:
		return parseString(v.String())
	case decimal.Decimal:
		return v
	default:
		if f, ok := toFloat(raw); ok {
			return decimal.NewFromFloat(f)
		}
		return decimal.Zero
	}
}

func parseString(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	if decimalSuffix.MatchString(s) {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero
		}
		return d
	}

	cleaned := strings.Replace(thousandsReplacer.Replace(s), ",", ".", 1)
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// toFloat accepts every Go numeric kind. NaN and infinities are rejected
// because decimal cannot represent them.
func toFloat(raw any) (float64, bool) {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
