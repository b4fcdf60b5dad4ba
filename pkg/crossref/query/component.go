package query

import "slices"

// Component is one of the top-level resource families of the API.
type Component string

// Resource families.
const (
	ComponentWorks    Component = "works"
	ComponentFunders  Component = "funders"
	ComponentMembers  Component = "members"
	ComponentPrefixes Component = "prefixes"
	ComponentTypes    Component = "types"
	ComponentJournals Component = "journals"
)

// Components lists every resource family.
func Components() []Component {
	return []Component{
		ComponentWorks,
		ComponentFunders,
		ComponentMembers,
		ComponentPrefixes,
		ComponentTypes,
		ComponentJournals,
	}
}

// Route returns the path segment of the family, e.g. `/works`.
func (c Component) Route() string {
	return "/" + string(c)
}

// String implements fmt.Stringer.
func (c Component) String() string {
	return string(c)
}

// Order is the direction of a sort.
type Order string

// Sort directions.
const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// ParseOrder resolves a sort direction.
func ParseOrder(name string) (Order, error) {
	switch Order(name) {
	case OrderAsc, OrderDesc:
		return Order(name), nil
	}

	return "", &RouteError{Op: "parse order", Value: name, Err: ErrUnknownOrder}
}

// ParamKey implements QueryParam.
func (o Order) ParamKey() string { return "order" }

// ParamValue implements QueryParam.
func (o Order) ParamValue() (string, bool) { return string(o), true }

// Sort is a field results can be sorted by.
type Sort string

// Sort keys.
const (
	SortScore               Sort = "score"
	SortUpdated             Sort = "updated"
	SortDeposited           Sort = "deposited"
	SortIndexed             Sort = "indexed"
	SortPublished           Sort = "published"
	SortPublishedPrint      Sort = "published-print"
	SortPublishedOnline     Sort = "published-online"
	SortIssued              Sort = "issued"
	SortIsReferencedByCount Sort = "is-referenced-by-count"
	SortReferenceCount      Sort = "reference-count"
)

// ParamKey implements QueryParam.
func (s Sort) ParamKey() string { return "sort" }

// ParamValue implements QueryParam.
func (s Sort) ParamValue() (string, bool) { return string(s), true }

// Sorts lists every sort key.
func Sorts() []Sort {
	return []Sort{
		SortScore, SortUpdated, SortDeposited, SortIndexed, SortPublished,
		SortPublishedPrint, SortPublishedOnline, SortIssued,
		SortIsReferencedByCount, SortReferenceCount,
	}
}

// ParseSort resolves a sort key.
func ParseSort(name string) (Sort, error) {
	if slices.Contains(Sorts(), Sort(name)) {
		return Sort(name), nil
	}

	return "", &RouteError{Op: "parse sort", Value: name, Err: ErrUnknownSort}
}

// Visibility is the reference distribution level of a member or work.
type Visibility string

// Reference visibility levels.
const (
	VisibilityOpen    Visibility = "open"
	VisibilityLimited Visibility = "limited"
	VisibilityClosed  Visibility = "closed"
)
