package utils

import "time"

const DateLayout = "2006-01-02"

// Today returns the current calendar day in the canteen's local zone.
func Today() string {
	return time.Now().Format(DateLayout)
}

// NormalizeDate validates an incoming YYYY-MM-DD string; empty means today.
func NormalizeDate(s string) (string, bool) {
	if s == "" {
		return Today(), true
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", false
	}
	return t.Format(DateLayout), true
}
