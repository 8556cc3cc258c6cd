package cli

import (
	"fmt"
	"math"
	"strings"
)

// Currency formats a value as Brazilian reais, with a dot as the thousands
// separator and a comma as the decimal separator: R$ 1.234,56.
func Currency(value float64) string {
	sign := ""
	if value < 0 {
		sign = "-"
	}

	cents := int64(math.Round(math.Abs(value) * 100))
	whole := cents / 100
	frac := cents % 100

	return fmt.Sprintf("%sR$ %s,%02d", sign, groupThousands(whole), frac)
}

// Percent formats a ratio already expressed in percentage points, with one
// decimal place and a comma separator: 12,5%.
func Percent(value float64) string {
	formatted := strings.Replace(fmt.Sprintf("%.1f", value), ".", ",", 1)
	return formatted + "%"
}

// MonthLabel turns a YYYY-MM key into the MM/YYYY form reports display.
func MonthLabel(monthKey string) string {
	parts := strings.SplitN(monthKey, "-", 2)
	if len(parts) != 2 {
		return monthKey
	}
	return parts[1] + "/" + parts[0]
}

func groupThousands(value int64) string {
	digits := fmt.Sprintf("%d", value)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
