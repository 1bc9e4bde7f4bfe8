package analyzer

import (
	"fmt"
	"strings"
)

// FormatAmount renders an amount with one decimal. Microgram amounts of a
// milligram or more are shown in mg.
func FormatAmount(amount float64, unit string) string {
	switch strings.ToLower(unit) {
	case "μg", "µg", "mcg", "ug":
		if amount >= 1000 {
			return fmt.Sprintf("%.1fmg", amount/1000)
		}
	}
	return fmt.Sprintf("%.1f%s", amount, unit)
}
