package util

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// IsValidInput reports whether s is non-blank and at least minLen bytes.
func IsValidInput(s string, minLen int) bool {
	return strings.TrimSpace(s) != "" && len(s) >= minLen
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// NormalizeOption trims and uppercases a selected option for grading.
func NormalizeOption(opt string) string {
	return strings.ToUpper(strings.TrimSpace(opt))
}

// IsValidOption reports whether opt names one of the four choices,
// case-insensitively.
func IsValidOption(opt string) bool {
	switch NormalizeOption(opt) {
	case "A", "B", "C", "D":
		return true
	default:
		return false
	}
}
