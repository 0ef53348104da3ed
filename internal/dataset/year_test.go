package dataset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableYearUnmarshal(t *testing.T) {
	tests := []struct {
		raw  string
		want NullableYear
	}{
		{raw: `2019`, want: YearOf(2019)},
		{raw: `"2019"`, want: YearOf(2019)},
		{raw: `" 2021 "`, want: YearOf(2021)},
		{raw: `2018.0`, want: YearOf(2018)},
		{raw: `null`, want: NullableYear{}},
		{raw: `""`, want: NullableYear{}},
		{raw: `0`, want: NullableYear{}},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			var got NullableYear
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNullableYearRejectsText(t *testing.T) {
	var got NullableYear
	err := json.Unmarshal([]byte(`"twenty"`), &got)
	assert.Error(t, err)
}

func TestNullableYearMarshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A NullableYear `json:"a"`
		B NullableYear `json:"b"`
	}{A: YearOf(2020)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2020,"b":null}`, string(out))
	assert.Equal(t, "2020", YearOf(2020).String())
	assert.Equal(t, "", NullableYear{}.String())
}
