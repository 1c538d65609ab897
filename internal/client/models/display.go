package models

import "time"

// Placeholder is shown for empty values and for dates that do not exist yet.
const Placeholder = "—"

// DateLayout is the display layout of calendar dates.
const DateLayout = "2006/01/02"

// MaskAccount keeps the first and last four characters of account numbers
// of eight characters or more and hides the middle.
func MaskAccount(account string) string {
	r := []rune(account)
	if len(r) < 8 {
		return account
	}
	return string(r[:4]) + " **** " + string(r[len(r)-4:])
}

// MaskPassword hides a password unless reveal is set.
func MaskPassword(password string, reveal bool) string {
	switch {
	case password == "":
		return Placeholder
	case reveal:
		return password
	default:
		return "••••••••"
	}
}

// FormatDate renders t as a calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// OrPlaceholder returns s, or Placeholder when s is empty.
func OrPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
