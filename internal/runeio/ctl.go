package runeio

import (
	"fmt"
	"strings"
	"unicode"
)

// CaretForm computes the ^-escaped printable form of a C0 control rune, or of
// a C1 control rune in its 7-bit ESC form; any other rune results in "".
func CaretForm(r rune) string {
	if r < 0x20 || r == 0x7f {
		return "^" + string(r^0x40)
	} else if 0x80 <= r && r <= 0x9f {
		return "^[" + string(r^0xc0)
	}
	return ""
}

// Printable returns s with any control runes replaced by their CaretForm, and
// any other non-printable runes replaced by a \u escape.
// Strings that need no escaping are returned as is.
func Printable(s string) string {
	i := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsPrint(r) })
	if i < 0 {
		return s
	}
	var sb strings.Builder
	sb.WriteString(s[:i])
	for _, r := range s[i:] {
		if unicode.IsPrint(r) {
			sb.WriteRune(r)
		} else if caret := CaretForm(r); caret != "" {
			sb.WriteString(caret)
		} else {
			fmt.Fprintf(&sb, "\\u%04x", r)
		}
	}
	return sb.String()
}
