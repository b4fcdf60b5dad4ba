package query

import "strings"

// NormalizeISBN strips hyphens and spaces from an ISBN and upper-cases a
// trailing X check digit, e.g. `0-201-61622-x` becomes `020161622X`.
func NormalizeISBN(isbn string) string {
	var b strings.Builder

	for _, c := range isbn {
		switch {
		case c >= '0' && c <= '9':
			b.WriteRune(c)
		case c == 'x' || c == 'X':
			b.WriteRune('X')
		case c == '-' || c == ' ':
		default:
			b.WriteRune(c)
		}
	}

	return b.String()
}
