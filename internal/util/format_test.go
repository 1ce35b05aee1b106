package util

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		value int64
		want  string
	}{
		{1234567, "12,345.67"},
		{20000, "200.00"},
		{-148000, "-1,480.00"},
		{5, "0.05"},
		{0, "0.00"},
	}

	for _, tc := range tests {
		if got := FormatMoney(tc.value, ",", "."); got != tc.want {
			t.Errorf("FormatMoney(%d) = %q, want %q", tc.value, got, tc.want)
		}
	}
}
