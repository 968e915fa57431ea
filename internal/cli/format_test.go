package cli

import "testing"

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		want string
		n    float64
	}{
		{n: 0, want: "$0.00"},
		{n: 4.5, want: "$4.50"},
		{n: 1234.56, want: "$1,234.56"},
		{n: -1234.56, want: "-$1,234.56"},
		{n: 1000000, want: "$1,000,000.00"},
		{n: 999.999, want: "$1,000.00"},
		{n: -0.005, want: "-$0.01"},
	}

	for _, tt := range tests {
		if got := FormatCurrency(tt.n); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
