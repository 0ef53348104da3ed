package analytics

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotApplicable is rendered in place of values that cannot be derived.
const NotApplicable = "N/A"

var numberPrinter = message.NewPrinter(language.English)

// FormatCurrency renders USD amounts as $1.25M, $250K or $900.
func FormatCurrency(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%s$%.2fM", sign, v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%s$%.0fK", sign, v/1_000)
	default:
		return fmt.Sprintf("%s$%.0f", sign, v)
	}
}

// FormatMillions always renders in millions with two decimals.
func FormatMillions(v float64) string {
	return fmt.Sprintf("$%.2fM", v/1_000_000)
}

// FormatPercent renders v with the given decimals and a percent sign.
func FormatPercent(v float64, decimals int) string {
	return FormatDecimal(v, decimals) + "%"
}

// FormatDecimal renders v with a fixed number of decimals.
func FormatDecimal(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return fmt.Sprintf("%.*f", decimals, v)
}

// FormatNumber renders v rounded to an integer with thousands separators.
func FormatNumber(v float64) string {
	return numberPrinter.Sprintf("%d", int64(math.Round(v)))
}

// FormatOptionalPercent renders a nullable percentage or N/A.
func FormatOptionalPercent(v *float64, decimals int) string {
	if v == nil {
		return NotApplicable
	}
	return FormatPercent(*v, decimals)
}

// FormatOptionalNumber renders a nullable count or N/A.
func FormatOptionalNumber(v *int) string {
	if v == nil {
		return NotApplicable
	}
	return FormatNumber(float64(*v))
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"}

// FormatDate renders an ISO date as "Jan 2, 2006". Unparsable input is
// returned unchanged.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return s
}
