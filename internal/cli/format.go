package cli

import (
	"fmt"
	"strings"
)

// FormatCurrency renders an amount as a dollar figure with two decimals
// and thousands separators, the sign ahead of the symbol: -$1,234.56.
func FormatCurrency(n float64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	whole := int64(n)
	cents := int64(n*100+0.5) - whole*100
	if cents >= 100 { // rounding carried into the next dollar
		whole++
		cents -= 100
	}
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(whole), cents)
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
