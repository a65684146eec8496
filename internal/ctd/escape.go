package ctd

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var escapePattern = regexp.MustCompile(`\{(\d+)\}`)

// Escape replaces private-use characters, which the game uses as control
// codes, with "{<decimal codepoint>}".
func Escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.Is(unicode.Co, r) {
			fmt.Fprintf(&b, "{%d}", r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Unescape turns every "{<decimal>}" back into its character.
func Unescape(s string) string {
	return escapePattern.ReplaceAllStringFunc(s, func(m string) string {
		n, err := strconv.ParseInt(m[1:len(m)-1], 10, 32)
		if err != nil {
			return m
		}
		return string(rune(n))
	})
}
