package util

import (
	"strings"
	"unicode"
)

// Slugify 產生url slug: 小寫，非英數字轉為連字號
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true // 開頭不補dash
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
