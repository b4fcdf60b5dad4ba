package query

import (
	"strconv"
	"strings"
)

// Facet is a field the API can aggregate counts for.
type Facet string

// Facets supported by the works route.
const (
	FacetAffiliation    Facet = "affiliation"
	FacetFunderName     Facet = "funder-name"
	FacetFunderDOI      Facet = "funder-doi"
	FacetORCID          Facet = "orcid"
	FacetContainerTitle Facet = "container-title"
	FacetAssertion      Facet = "assertion"
	FacetArchive        Facet = "archive"
	FacetUpdateType     Facet = "update-type"
	FacetISSN           Facet = "issn"
	FacetPublished      Facet = "published"
	FacetTypeName       Facet = "type-name"
	FacetLicense        Facet = "license"
	FacetCategoryName   Facet = "category-name"
	FacetRelationType   Facet = "relation-type"
	FacetAssertionGroup Facet = "assertion-group"
	FacetPublisherName  Facet = "publisher-name"
)

// MaxLimitedFacetCount is the largest count accepted for orcid, container-title and issn facets.
const MaxLimitedFacetCount = 100

// Facets lists every facet.
func Facets() []Facet {
	return []Facet{
		FacetAffiliation, FacetFunderName, FacetFunderDOI, FacetORCID,
		FacetContainerTitle, FacetAssertion, FacetArchive, FacetUpdateType,
		FacetISSN, FacetPublished, FacetTypeName, FacetLicense,
		FacetCategoryName, FacetRelationType, FacetAssertionGroup, FacetPublisherName,
	}
}

// ParseFacet resolves a facet name.
func ParseFacet(name string) (Facet, error) {
	for _, f := range Facets() {
		if string(f) == name {
			return f, nil
		}
	}

	return "", &RouteError{Op: "parse facet", Value: name, Err: ErrUnknownFacet}
}

func (f Facet) limited() bool {
	switch f {
	case FacetORCID, FacetContainerTitle, FacetISSN:
		return true
	}

	return false
}

// FacetCount requests counts for a facet. A nil Count asks for the facet's maximum.
type FacetCount struct {
	Facet Facet
	Count *int
}

// AllOf requests every value of a facet, up to the facet's maximum.
func AllOf(f Facet) FacetCount {
	return FacetCount{Facet: f}
}

// TopOf requests at most n values of a facet.
func TopOf(f Facet, n int) FacetCount {
	return FacetCount{Facet: f, Count: &n}
}

// ParseFacetCount recovers a facet request from `name` or `name:count` text,
// where count is a positive number or `*`.
func ParseFacetCount(raw string) (FacetCount, error) {
	name, count, hasCount := strings.Cut(strings.TrimSpace(raw), ":")

	f, err := ParseFacet(name)
	if err != nil {
		return FacetCount{}, err
	}

	if !hasCount || count == "*" {
		return AllOf(f), nil
	}

	n, err := strconv.Atoi(count)
	if err != nil || n < 1 {
		return FacetCount{}, &RouteError{Op: "parse facet", Value: raw, Err: ErrInvalidFacetCount}
	}

	return TopOf(f, n), nil
}

// Key implements ParamFragment.
func (c FacetCount) Key() string {
	return string(c.Facet)
}

// Value implements ParamFragment.
func (c FacetCount) Value() (string, bool) {
	if c.Count == nil {
		if c.Facet.limited() {
			return strconv.Itoa(MaxLimitedFacetCount), true
		}

		return "*", true
	}

	n := *c.Count
	if c.Facet.limited() && n > MaxLimitedFacetCount {
		n = MaxLimitedFacetCount
	}

	return strconv.Itoa(n), true
}
