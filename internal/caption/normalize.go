package caption

import (
	"strings"
	"unicode"
)

// Normalize produces the canonical search key for a caption text: every rune
// that is not a Unicode letter, number or underscore is dropped, whitespace
// runs collapse to a single space, and the result is trimmed and lowercased.
// Hangul syllables classify as letters, so Korean text survives intact.
// IsNumber rather than IsDigit keeps letterlike numerals such as Ⅻ.
func Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_':
			sb.WriteRune(r)
		case unicode.IsSpace(r):
			sb.WriteRune(' ')
		}
	}
	return strings.ToLower(strings.Join(strings.Fields(sb.String()), " "))
}
