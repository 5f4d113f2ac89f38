package strutil

import (
	"strings"

	"golang.org/x/text/width"
)

func IsBlankStr(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Pad spaces.
//
// if n > 0, pad left, else pad right.
func PadSpace(n int, s string) string {
	return PadToken(n, s, " ")
}

// Display width of the rune, east asian wide characters take two columns.
func RuneWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth, width.EastAsianAmbiguous:
		return 2
	default:
		return 1
	}
}

func StrWidth(s string) int {
	n := 0
	for _, r := range s {
		n += RuneWidth(r)
	}
	return n
}

func PadToken(n int, s string, tok string) string {
	rl := StrWidth(s)
	an := n
	if n < 0 {
		an = n * -1
	}
	if rl >= an {
		return s
	}
	pad := an - rl
	if n < 0 {
		return s + strings.Repeat(tok, pad)
	}
	return strings.Repeat(tok, pad) + s
}

// Splist kv pair. Returns false if token is not found or key is absent.
func SplitKV(s string, token string) (string, string, bool) {
	k, v, ok := strings.Cut(s, token)
	if !ok {
		return "", "", false
	}
	k = strings.TrimSpace(k)
	v = strings.TrimSpace(v)
	if k == "" { // e.g., ' = value'.
		return k, v, false
	}
	return k, v, true
}

func UnquoteStr(s string) string {
	ru := []rune(s)
	if len(ru) < 2 {
		return s
	}
	r1 := ru[0]
	if (r1 == '"' || r1 == '\'') && ru[len(ru)-1] == r1 {
		return string(ru[1 : len(ru)-1])
	}
	return s
}
