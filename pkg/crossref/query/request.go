package query

import (
	"net/url"
	"strings"
)

// RequestKind distinguishes the shapes a ResourceRequest can take.
type RequestKind int

// Request kinds.
const (
	KindIdentifier RequestKind = iota + 1
	KindQuery
	KindCombined
	KindAgency
)

// String implements fmt.Stringer.
func (k RequestKind) String() string {
	switch k {
	case KindIdentifier:
		return "identifier"
	case KindQuery:
		return "query"
	case KindCombined:
		return "combined"
	case KindAgency:
		return "agency"
	}

	return "unknown"
}

type paramSource interface {
	Params() []string
}

// ResourceRequest is a single addressable request against one resource family:
// a record by identifier, a filtered list, the works of a parent record, or the
// registration agency of a DOI. Build one with the family constructors below.
type ResourceRequest struct {
	component Component
	kind      RequestKind
	id        string
	works     WorksQuery
	params    paramSource
}

// WorkByDOI requests a single work.
func WorkByDOI(doi string) ResourceRequest {
	return ResourceRequest{component: ComponentWorks, kind: KindIdentifier, id: doi}
}

// WorksMatching requests a list of works.
func WorksMatching(q WorksQuery) ResourceRequest {
	return ResourceRequest{component: ComponentWorks, kind: KindQuery, works: q}
}

// AgencyOf requests the registration agency of a DOI.
func AgencyOf(doi string) ResourceRequest {
	return ResourceRequest{component: ComponentWorks, kind: KindAgency, id: doi}
}

// FunderByID requests a single funder.
func FunderByID(id string) ResourceRequest {
	return ResourceRequest{component: ComponentFunders, kind: KindIdentifier, id: id}
}

// FundersMatching requests a list of funders.
func FundersMatching(q FundersQuery) ResourceRequest {
	return ResourceRequest{component: ComponentFunders, kind: KindQuery, params: q}
}

// FunderWorks requests the works of a funder.
func FunderWorks(id string, q WorksQuery) ResourceRequest {
	return combined(ComponentFunders, id, q)
}

// MemberByID requests a single member.
func MemberByID(id string) ResourceRequest {
	return ResourceRequest{component: ComponentMembers, kind: KindIdentifier, id: id}
}

// MembersMatching requests a list of members.
func MembersMatching(q MembersQuery) ResourceRequest {
	return ResourceRequest{component: ComponentMembers, kind: KindQuery, params: q}
}

// MemberWorks requests the works of a member.
func MemberWorks(id string, q WorksQuery) ResourceRequest {
	return combined(ComponentMembers, id, q)
}

// JournalByISSN requests a single journal.
func JournalByISSN(issn string) ResourceRequest {
	return ResourceRequest{component: ComponentJournals, kind: KindIdentifier, id: issn}
}

// JournalsMatching requests a list of journals.
func JournalsMatching(q JournalsQuery) ResourceRequest {
	return ResourceRequest{component: ComponentJournals, kind: KindQuery, params: q}
}

// JournalWorks requests the works published in a journal.
func JournalWorks(issn string, q WorksQuery) ResourceRequest {
	return combined(ComponentJournals, issn, q)
}

// PrefixByID requests a single DOI prefix.
func PrefixByID(prefix string) ResourceRequest {
	return ResourceRequest{component: ComponentPrefixes, kind: KindIdentifier, id: prefix}
}

// PrefixWorks requests the works registered under a prefix.
func PrefixWorks(prefix string, q WorksQuery) ResourceRequest {
	return combined(ComponentPrefixes, prefix, q)
}

// TypeByID requests a single work type.
func TypeByID(id string) ResourceRequest {
	return ResourceRequest{component: ComponentTypes, kind: KindIdentifier, id: id}
}

// AllTypes requests the list of every work type.
func AllTypes() ResourceRequest {
	return ResourceRequest{component: ComponentTypes, kind: KindQuery}
}

// TypeWorks requests the works of a type.
func TypeWorks(t WorkType, q WorksQuery) ResourceRequest {
	return combined(ComponentTypes, t.ID(), q)
}

func combined(parent Component, id string, q WorksQuery) ResourceRequest {
	return ResourceRequest{component: parent, kind: KindCombined, id: id, works: q}
}

// Component returns the family the request targets.
func (r ResourceRequest) Component() Component {
	return r.component
}

// Kind returns the shape of the request.
func (r ResourceRequest) Kind() RequestKind {
	return r.kind
}

// ID returns the identifier of an identifier, combined or agency request.
func (r ResourceRequest) ID() string {
	return r.id
}

// IsWorksList reports whether the request yields a list of works, which is
// the case for works queries and combined requests.
func (r ResourceRequest) IsWorksList() bool {
	return r.kind == KindCombined || (r.kind == KindQuery && r.component == ComponentWorks)
}

// WorksQuery returns the works query of a works-list request.
func (r ResourceRequest) WorksQuery() (WorksQuery, bool) {
	if !r.IsWorksList() {
		return WorksQuery{}, false
	}

	return r.works, true
}

// WithWorksQuery returns a copy of a works-list request carrying q.
func (r ResourceRequest) WithWorksQuery(q WorksQuery) (ResourceRequest, error) {
	if !r.IsWorksList() {
		return r, &RouteError{Op: "replace works query", Value: string(r.component), Err: ErrNotWorksListRoute}
	}

	r.works = q

	return r, nil
}

// Route renders the path and query string of the request, e.g.
// `/members/98/works?query=ecology&rows=5`.
func (r ResourceRequest) Route() (string, error) {
	if r.component == "" || r.kind == 0 {
		return "", &RouteError{Op: "build route", Err: ErrInvalidRequest}
	}

	if r.kind != KindQuery && strings.TrimSpace(r.id) == "" {
		return "", &RouteError{Op: "build route", Value: string(r.component), Err: ErrEmptyIdentifier}
	}

	switch r.kind {
	case KindIdentifier:
		return r.component.Route() + "/" + escapeID(r.id), nil
	case KindAgency:
		return ComponentWorks.Route() + "/" + escapeID(r.id) + "/agency", nil
	case KindCombined:
		return r.component.Route() + "/" + escapeID(r.id) + ComponentWorks.Route() + encodeParams(r.works.Params()), nil
	case KindQuery:
		if r.component == ComponentWorks {
			return r.component.Route() + encodeParams(r.works.Params()), nil
		}

		if r.params == nil {
			return r.component.Route(), nil
		}

		return r.component.Route() + encodeParams(r.params.Params()), nil
	}

	return "", &RouteError{Op: "build route", Value: r.kind.String(), Err: ErrInvalidRequest}
}

// escapeID path-escapes every `/`-separated segment of id. The slashes of a DOI
// stay separators while `#`, `?` and spaces remain part of the path.
func escapeID(id string) string {
	segments := strings.Split(id, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return strings.Join(segments, "/")
}

// ToURL joins the route of the request onto base, e.g. https://api.crossref.org.
func (r ResourceRequest) ToURL(base string) (string, error) {
	route, err := r.Route()
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(base, "/") + route, nil
}
