package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NullableYear is a founding year that may be absent. The source exports it
// either as a number, a numeric string, an empty string or null.
type NullableYear struct {
	Year  int
	Valid bool
}

// YearOf builds a present year, mainly for tests and fixtures.
func YearOf(year int) NullableYear {
	return NullableYear{Year: year, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (y *NullableYear) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*y = NullableYear{}
		return nil
	}
	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*y = NullableYear{}
			return nil
		}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("year_founded %q: %w", raw, err)
	}
	if f == 0 {
		*y = NullableYear{}
		return nil
	}
	*y = NullableYear{Year: int(f), Valid: true}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (y NullableYear) MarshalJSON() ([]byte, error) {
	if !y.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(y.Year)), nil
}

// String renders the year or an empty string.
func (y NullableYear) String() string {
	if !y.Valid {
		return ""
	}
	return strconv.Itoa(y.Year)
}
