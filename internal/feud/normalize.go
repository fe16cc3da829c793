package feud

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Stroked letters carry no combining mark, so NFD leaves them alone;
// map them by hand before stripping diacritics.
var stroked = strings.NewReplacer("ł", "l", "Ł", "L", "ø", "o", "Ø", "O", "đ", "d", "Đ", "D")

// Fold normalizes a guess for matching: trims whitespace, lowercases,
// and strips diacritics (NFD, drop combining marks, NFC), so "zolty"
// matches "żółty".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, stroked.Replace(s))
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
