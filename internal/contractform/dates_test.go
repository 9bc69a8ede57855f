package contractform

import "testing"

func TestMinEndDate(t *testing.T) {
	cases := []struct {
		start string
		want  string
	}{
		{"2024-06-10", "2024-07-08"},
		{"2024-12-20", "2025-01-17"}, // crosses year boundary
		{"2024-02-01", "2024-02-29"}, // leap year
		{"not-a-date", "not-a-date"},
	}
	for _, tc := range cases {
		if got := MinEndDate(tc.start); got != tc.want {
			t.Errorf("MinEndDate(%q) = %q, want %q", tc.start, got, tc.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{10000, "10,000"},
		{1000000, "1,000,000"},
		{123456789, "123,456,789"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Errorf("FormatAmount(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	if got, err := ParseAmount(" 1,234,567 "); err != nil || got != 1234567 {
		t.Errorf("ParseAmount = %d, %v", got, err)
	}
	for _, bad := range []string{"", "12a", "1.5", "-100", "₩1000"} {
		if _, err := ParseAmount(bad); err == nil {
			t.Errorf("ParseAmount(%q) expected error", bad)
		}
	}
}
