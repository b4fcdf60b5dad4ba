package response

// Message is the payload of an envelope. The set of implementations is closed:
// one per MessageType.
type Message interface {
	MessageType() MessageType
}

// MessageType implements Message.
func (*Work) MessageType() MessageType { return MessageTypeWork }

// MessageType implements Message.
func (*WorkList) MessageType() MessageType { return MessageTypeWorkList }

// MessageType implements Message.
func (*WorkAgency) MessageType() MessageType { return MessageTypeWorkAgency }

// MessageType implements Message.
func (*Funder) MessageType() MessageType { return MessageTypeFunder }

// MessageType implements Message.
func (*FunderList) MessageType() MessageType { return MessageTypeFunderList }

// MessageType implements Message.
func (*Prefix) MessageType() MessageType { return MessageTypePrefix }

// MessageType implements Message.
func (*Member) MessageType() MessageType { return MessageTypeMember }

// MessageType implements Message.
func (*MemberList) MessageType() MessageType { return MessageTypeMemberList }

// MessageType implements Message.
func (*WorkType) MessageType() MessageType { return MessageTypeType }

// MessageType implements Message.
func (*TypeList) MessageType() MessageType { return MessageTypeTypeList }

// MessageType implements Message.
func (*Journal) MessageType() MessageType { return MessageTypeJournal }

// MessageType implements Message.
func (*JournalList) MessageType() MessageType { return MessageTypeJournalList }

// ValidationFailure lists why the server rejected a request.
type ValidationFailure []Failure

// MessageType implements Message.
func (ValidationFailure) MessageType() MessageType { return MessageTypeValidationFailure }

// RouteNotFound signals a path the server does not serve. It carries no payload.
type RouteNotFound struct{}

// MessageType implements Message.
func (RouteNotFound) MessageType() MessageType { return MessageTypeRouteNotFound }

// FacetItem holds the counts of one facet.
type FacetItem struct {
	ValueCount int            `json:"value-count" yaml:"value-count"`
	Values     map[string]int `json:"values"      yaml:"values"`
}

// FacetMap maps facet names to their counts.
type FacetMap map[string]FacetItem

// QueryEcho repeats the query the server evaluated.
type QueryEcho struct {
	StartIndex  int     `json:"start-index"            yaml:"start-index"`
	SearchTerms *string `json:"search-terms,omitempty" yaml:"search-terms,omitempty"`
}

// ListMeta is shared by every list message.
type ListMeta struct {
	Facets       FacetMap   `json:"facets,omitempty"         yaml:"facets,omitempty"`
	TotalResults int        `json:"total-results"            yaml:"total-results"`
	ItemsPerPage *int       `json:"items-per-page,omitempty" yaml:"items-per-page,omitempty"`
	Query        *QueryEcho `json:"query,omitempty"          yaml:"query,omitempty"`
}

// WorkList is a page of works. NextCursor is set when the request used a cursor.
type WorkList struct {
	ListMeta   `yaml:",inline"`
	NextCursor *string `json:"next-cursor,omitempty" yaml:"next-cursor,omitempty"`
	Items      []Work  `json:"items"                 yaml:"items"`
}

// FunderList is a page of funders.
type FunderList struct {
	ListMeta `yaml:",inline"`
	Items    []Funder `json:"items" yaml:"items"`
}

// MemberList is a page of members.
type MemberList struct {
	ListMeta `yaml:",inline"`
	Items    []Member `json:"items" yaml:"items"`
}

// JournalList is a page of journals.
type JournalList struct {
	ListMeta `yaml:",inline"`
	Items    []Journal `json:"items" yaml:"items"`
}

// TypeList is the work type registry.
type TypeList struct {
	ListMeta `yaml:",inline"`
	Items    []WorkType `json:"items" yaml:"items"`
}
