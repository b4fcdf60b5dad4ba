package query

import (
	"net/url"
	"strings"
)

// ParamFragment is a single element of a comma-joined parameter value,
// such as one filter (`from-pub-date:2020-01-01`) or one facet (`orcid:10`).
type ParamFragment interface {
	// Key is the wire name of the fragment.
	Key() string
	// Value returns the encoded payload, or false when the fragment is a bare key.
	Value() (string, bool)
}

// QueryParam is a complete `key=value` query string parameter.
type QueryParam interface {
	ParamKey() string
	ParamValue() (string, bool)
}

// Fragment renders a fragment as `key:value`, or as the bare key when it has no payload.
func Fragment(f ParamFragment) string {
	value, ok := f.Value()
	if !ok {
		return f.Key()
	}

	return f.Key() + ":" + value
}

// Param renders a parameter as `key=value`, or as the bare key when it has no payload.
func Param(p QueryParam) string {
	value, ok := p.ParamValue()
	if !ok {
		return p.ParamKey()
	}

	return p.ParamKey() + "=" + value
}

// JoinFragments renders a list of fragments as a single `name=a,b,c` parameter.
// It returns false when the list is empty.
func JoinFragments[T ParamFragment](name string, fragments []T) (string, bool) {
	if len(fragments) == 0 {
		return "", false
	}

	parts := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		parts = append(parts, Fragment(fragment))
	}

	return name + "=" + strings.Join(parts, ","), true
}

// FormatQuery collapses whitespace in a free-text term, escapes each word and
// joins the words with `+`.
func FormatQuery(term string) string {
	words := strings.Fields(term)
	for i, word := range words {
		words[i] = url.QueryEscape(word)
	}

	return strings.Join(words, "+")
}

// FormatQueries formats every term and joins the non-empty results with `+`.
func FormatQueries(terms []string) string {
	formatted := make([]string, 0, len(terms))

	for _, term := range terms {
		if f := FormatQuery(term); f != "" {
			formatted = append(formatted, f)
		}
	}

	return strings.Join(formatted, "+")
}

// escapeValue escapes a fragment payload so that it cannot break the
// surrounding `&`, `=` or `,` structure of the query string.
func escapeValue(value string) string {
	return url.QueryEscape(value)
}

// encodeParams joins rendered parameters with `&` and prefixes a `?` when any are present.
func encodeParams(params []string) string {
	if len(params) == 0 {
		return ""
	}

	return "?" + strings.Join(params, "&")
}
