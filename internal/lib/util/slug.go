package util

import (
	"strings"
	"unicode"
)

// Slugify lowercases s and collapses anything that is not a letter or
// digit into single hyphens. Returns fallback when nothing survives.
func Slugify(s, fallback string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return fallback
	}
	return slug
}
