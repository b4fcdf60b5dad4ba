package response

import "encoding/json"

// Funder is an entry of the funder registry.
type Funder struct {
	ID                  string                                `json:"id"                              yaml:"id"`
	Name                string                                `json:"name"                            yaml:"name"`
	Location            string                                `json:"location,omitempty"              yaml:"location,omitempty"`
	URI                 string                                `json:"uri,omitempty"                   yaml:"uri,omitempty"`
	AltNames            []string                              `json:"alt-names,omitempty"             yaml:"alt-names,omitempty"`
	WorkCount           *int                                  `json:"work-count,omitempty"            yaml:"work-count,omitempty"`
	DescendantWorkCount *int                                  `json:"descendant-work-count,omitempty" yaml:"descendant-work-count,omitempty"`
	Descendants         []string                              `json:"descendants,omitempty"           yaml:"descendants,omitempty"`
	HierarchyNames      map[string]*string                    `json:"hierarchy-names,omitempty"       yaml:"hierarchy-names,omitempty"`
	Hierarchy           map[string]map[string]map[string]bool `json:"hierarchy,omitempty"             yaml:"hierarchy,omitempty"`
	Replaces            []string                              `json:"replaces,omitempty"              yaml:"replaces,omitempty"`
	ReplacedBy          []string                              `json:"replaced-by,omitempty"           yaml:"replaced-by,omitempty"`
	Tokens              []string                              `json:"tokens,omitempty"                yaml:"tokens,omitempty"`
}

var funderRequired = []string{"id", "name"}

// Member is an organisation that registers content.
type Member struct {
	ID                  int                       `json:"id"                               yaml:"id"`
	PrimaryName         string                    `json:"primary-name"                     yaml:"primary-name"`
	Names               []string                  `json:"names,omitempty"                  yaml:"names,omitempty"`
	Location            string                    `json:"location,omitempty"               yaml:"location,omitempty"`
	LastStatusCheckTime int64                     `json:"last-status-check-time,omitempty" yaml:"last-status-check-time,omitempty"`
	Counts              Counts                    `json:"counts"                           yaml:"counts"`
	Breakdowns          Breakdowns                `json:"breakdowns"                       yaml:"breakdowns"`
	Prefixes            []string                  `json:"prefixes,omitempty"               yaml:"prefixes,omitempty"`
	Prefix              []RefPrefix               `json:"prefix,omitempty"                 yaml:"prefix,omitempty"`
	Coverage            map[string]float64        `json:"coverage,omitempty"               yaml:"coverage,omitempty"`
	CountsType          map[string]map[string]int `json:"counts-type,omitempty"            yaml:"counts-type,omitempty"`
	CoverageType        json.RawMessage           `json:"coverage-type,omitempty"          yaml:"-"`
	Flags               map[string]bool           `json:"flags,omitempty"                  yaml:"flags,omitempty"`
	Tokens              []string                  `json:"tokens,omitempty"                 yaml:"tokens,omitempty"`
}

var memberRequired = []string{"id", "primary-name"}

// Counts summarises the DOIs of a member.
type Counts struct {
	TotalDOIs    int `json:"total-dois"    yaml:"total-dois"`
	CurrentDOIs  int `json:"current-dois"  yaml:"current-dois"`
	BackfileDOIs int `json:"backfile-dois" yaml:"backfile-dois"`
}

// Breakdowns holds per-year DOI counts as [year, count] pairs.
type Breakdowns struct {
	DOIsByIssuedYear [][]int `json:"dois-by-issued-year" yaml:"dois-by-issued-year"`
}

// RefPrefix is a prefix owned by a member.
type RefPrefix struct {
	Value               string `json:"value"                          yaml:"value"`
	Name                string `json:"name"                           yaml:"name"`
	PublicReferences    bool   `json:"public-references"              yaml:"public-references"`
	ReferenceVisibility string `json:"reference-visibility,omitempty" yaml:"reference-visibility,omitempty"`
}

// Journal is a serial publication identified by its ISSNs.
type Journal struct {
	Title               string          `json:"title,omitempty"                  yaml:"title,omitempty"`
	Publisher           string          `json:"publisher,omitempty"              yaml:"publisher,omitempty"`
	ISSN                []string        `json:"ISSN"                             yaml:"ISSN"`
	ISSNType            []ISSNType      `json:"issn-type,omitempty"              yaml:"issn-type,omitempty"`
	Subjects            []Subject       `json:"subjects,omitempty"               yaml:"subjects,omitempty"`
	Counts              json.RawMessage `json:"counts,omitempty"                 yaml:"-"`
	Breakdowns          json.RawMessage `json:"breakdowns,omitempty"             yaml:"-"`
	Coverage            json.RawMessage `json:"coverage,omitempty"               yaml:"-"`
	CoverageType        json.RawMessage `json:"coverage-type,omitempty"          yaml:"-"`
	Flags               map[string]bool `json:"flags,omitempty"                  yaml:"flags,omitempty"`
	LastStatusCheckTime int64           `json:"last-status-check-time,omitempty" yaml:"last-status-check-time,omitempty"`
}

var journalRequired = []string{"ISSN"}

// Subject is a subject classification of a journal.
type Subject struct {
	Name string `json:"name"           yaml:"name"`
	ASJC int    `json:"ASJC,omitempty" yaml:"ASJC,omitempty"`
}

// Prefix is a DOI prefix and its owner.
type Prefix struct {
	Member string `json:"member" yaml:"member"`
	Name   string `json:"name"   yaml:"name"`
	Prefix string `json:"prefix" yaml:"prefix"`
}

var prefixRequired = []string{"member", "name", "prefix"}

// WorkAgency names the registration agency of a DOI.
type WorkAgency struct {
	DOI    string `json:"DOI"    yaml:"DOI"`
	Agency Agency `json:"agency" yaml:"agency"`
}

var workAgencyRequired = []string{"DOI", "agency"}

// Agency is a DOI registration agency, e.g. crossref or datacite.
type Agency struct {
	ID    string `json:"id"    yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// WorkType is an entry of the work type registry.
type WorkType struct {
	ID    string `json:"id"    yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

var workTypeRequired = []string{"id", "label"}

// Failure is one reason a request was rejected.
type Failure struct {
	Type    string          `json:"type"            yaml:"type"`
	Value   json.RawMessage `json:"value,omitempty" yaml:"-"`
	Message string          `json:"message"         yaml:"message"`
}

var failureRequired = []string{"type", "message"}

// ValueString returns the rejected value as text.
func (f Failure) ValueString() string {
	var s string
	if err := json.Unmarshal(f.Value, &s); err == nil {
		return s
	}

	return string(f.Value)
}
