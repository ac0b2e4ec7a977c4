package models

import "fmt"

// Monetary amounts are stored as int64 minor units (cents) so that sums
// are exact. FormatCents renders an amount for display in emails and
// exported statements.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
