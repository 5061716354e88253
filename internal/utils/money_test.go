package utils

import "testing"

func TestFormatRupees(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Rs. 0"},
		{500, "Rs. 500"},
		{1500, "Rs. 1,500"},
		{1234567, "Rs. 1,234,567"},
		{1500.50, "Rs. 1,500.50"},
		{-250, "-Rs. 250"},
	}

	for _, tc := range cases {
		if got := FormatRupees(tc.amount); got != tc.want {
			t.Fatalf("FormatRupees(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount("Rs. 1,500")
	if err != nil {
		t.Fatalf("ParseAmount returned error: %v", err)
	}
	if got != 1500 {
		t.Fatalf("ParseAmount = %v, want 1500", got)
	}

	if _, err := ParseAmount(""); err == nil {
		t.Fatalf("expected error for empty amount")
	}
	if _, err := ParseAmount("abc"); err == nil {
		t.Fatalf("expected error for non-numeric amount")
	}
}
