package utils

import "strings"

// NormalizePhoneNumber returns the E.164-like value ("+<country><national>")
// for a national number and a country calling code. Separators and the
// national trunk prefix are dropped.
func NormalizePhoneNumber(phone, countryCode string) string {
	national := strings.TrimLeft(digitsOnly(phone), "0")
	country := digitsOnly(countryCode)
	if national == "" {
		return ""
	}
	if strings.HasPrefix(national, country) && strings.HasPrefix(strings.TrimSpace(phone), "+") {
		return "+" + national
	}
	return "+" + country + national
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
