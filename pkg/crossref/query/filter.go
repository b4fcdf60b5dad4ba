package query

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format of date filter payloads.
const DateLayout = "2006-01-02"

type payloadKind int

const (
	payloadFlag payloadKind = iota
	payloadString
	payloadDate
	payloadInt
	payloadVisibility
	payloadWorkType
)

// filter is the shared representation behind every family's filter type.
type filter struct {
	key      string
	value    string
	hasValue bool
}

// Key implements ParamFragment.
func (f filter) Key() string {
	return f.key
}

// Value implements ParamFragment.
func (f filter) Value() (string, bool) {
	return f.value, f.hasValue
}

// String renders the filter as it appears inside the `filter=` parameter.
func (f filter) String() string {
	return Fragment(f)
}

func flag(key string) filter {
	return filter{key: key}
}

func text(key, value string) filter {
	return filter{key: key, value: escapeValue(value), hasValue: true}
}

func date(key string, t time.Time) filter {
	return filter{key: key, value: t.Format(DateLayout), hasValue: true}
}

func number(key string, n int) filter {
	return filter{key: key, value: strconv.Itoa(n), hasValue: true}
}

// parseFilter builds a filter from `key` or `key:value` text, given the payload
// kind registered for key.
func parseFilter(raw string, kinds map[string]payloadKind) (filter, error) {
	key, value, hasValue := strings.Cut(strings.TrimSpace(raw), ":")

	kind, ok := kinds[key]
	if !ok {
		return filter{}, &RouteError{Op: "parse filter", Value: raw, Err: ErrUnknownFilter}
	}

	invalid := &RouteError{Op: "parse filter", Value: raw, Err: ErrInvalidFilter}

	switch kind {
	case payloadFlag:
		if hasValue && value != "true" {
			return filter{}, invalid
		}

		return flag(key), nil
	case payloadString:
		if value == "" {
			return filter{}, invalid
		}

		return text(key, value), nil
	case payloadDate:
		t, err := time.Parse(DateLayout, value)
		if err != nil {
			return filter{}, invalid
		}

		return date(key, t), nil
	case payloadInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return filter{}, invalid
		}

		return number(key, n), nil
	case payloadVisibility:
		switch Visibility(value) {
		case VisibilityOpen, VisibilityLimited, VisibilityClosed:
			return text(key, value), nil
		}

		return filter{}, invalid
	case payloadWorkType:
		t, err := ParseWorkType(value)
		if err != nil {
			return filter{}, err
		}

		return text(key, t.ID()), nil
	}

	return filter{}, invalid
}

// MemberFilter narrows a members query.
type MemberFilter struct{ filter }

var memberFilterKinds = map[string]payloadKind{
	"has-public-references": payloadFlag,
	"reference-visibility":  payloadVisibility,
	"blackfile-doi-count":   payloadInt,
	"current-doi-count":     payloadInt,
}

// MemberHasPublicReferences selects members that make their references public.
func MemberHasPublicReferences() MemberFilter {
	return MemberFilter{flag("has-public-references")}
}

// MemberReferenceVisibility selects members with the given reference visibility.
func MemberReferenceVisibility(v Visibility) MemberFilter {
	return MemberFilter{text("reference-visibility", string(v))}
}

// MemberBackfileDOICount selects members with exactly n back-file DOIs.
func MemberBackfileDOICount(n int) MemberFilter {
	return MemberFilter{number("blackfile-doi-count", n)}
}

// MemberCurrentDOICount selects members with exactly n current DOIs.
func MemberCurrentDOICount(n int) MemberFilter {
	return MemberFilter{number("current-doi-count", n)}
}

// ParseMemberFilter recovers a member filter from its wire text.
func ParseMemberFilter(raw string) (MemberFilter, error) {
	f, err := parseFilter(raw, memberFilterKinds)
	if err != nil {
		return MemberFilter{}, err
	}

	return MemberFilter{f}, nil
}

// FunderFilter narrows a funders query.
type FunderFilter struct{ filter }

var funderFilterKinds = map[string]payloadKind{
	"location": payloadString,
}

// FunderLocation selects funders located in the named country.
func FunderLocation(country string) FunderFilter {
	return FunderFilter{text("location", country)}
}

// ParseFunderFilter recovers a funder filter from its wire text.
func ParseFunderFilter(raw string) (FunderFilter, error) {
	f, err := parseFilter(raw, funderFilterKinds)
	if err != nil {
		return FunderFilter{}, err
	}

	return FunderFilter{f}, nil
}
