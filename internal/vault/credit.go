package vault

import "strconv"

// ParseCreditTerms coerces the raw credit-card fields entered by the user.
// Values that are missing or unparsable fall back to 0 (limit) and 1 (days)
// rather than failing. Day values are deliberately not range-checked against
// 1-31, matching the permissive behavior of existing vault files.
func ParseCreditTerms(limit, dueDay, closeDay string) (float64, int, int) {
	l, err := strconv.ParseFloat(limit, 64)
	if err != nil || l < 0 {
		l = 0
	}
	return l, parseDay(dueDay), parseDay(closeDay)
}

func parseDay(s string) int {
	d, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return d
}
