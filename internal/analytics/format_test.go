package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[float64]string{
		0:          "$0",
		950:        "$950",
		1_000:      "$1K",
		250_400:    "$250K",
		1_000_000:  "$1.00M",
		12_345_678: "$12.35M",
		-2_600:     "-$3K",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatCurrency(in), "input %v", in)
	}
}

func TestFormatNumbers(t *testing.T) {
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
	assert.Equal(t, "1,235", FormatNumber(1234.6))
	assert.Equal(t, "8.3%", FormatPercent(8.3333, 1))
	assert.Equal(t, "77%", FormatPercent(77.4, 0))
	assert.Equal(t, "2.25", FormatDecimal(2.25, 2))
	assert.Equal(t, "$1.25M", FormatMillions(1_250_000))
}

func TestFormatOptional(t *testing.T) {
	pct := 82.5
	n := 1200
	assert.Equal(t, NotApplicable, FormatOptionalPercent(nil, 1))
	assert.Equal(t, "82.5%", FormatOptionalPercent(&pct, 1))
	assert.Equal(t, NotApplicable, FormatOptionalNumber(nil))
	assert.Equal(t, "1,200", FormatOptionalNumber(&n))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Jan 15, 2025", FormatDate("2025-01-15"))
	assert.Equal(t, "Mar 3, 2025", FormatDate("2025-03-03T10:00:00Z"))
	assert.Equal(t, "soon", FormatDate("soon"))
}
