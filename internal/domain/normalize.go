package domain

import (
	"strings"
)

// CleanText prepares free text for storage:
//   - trims leading/trailing whitespace
//   - compresses runs of spaces into one
//
// Case is preserved.
func CleanText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeSerial canonicalizes an asset serial number for uniqueness checks:
// surrounding whitespace removed, inner spaces dropped, uppercased.
func NormalizeSerial(serial string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(serial), " ", ""))
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
