package response

// Work is a single registered publication.
type Work struct {
	Publisher           string                `json:"publisher"                       yaml:"publisher"`
	Title               []string              `json:"title"                           yaml:"title"`
	OriginalTitle       []string              `json:"original-title,omitempty"        yaml:"original-title,omitempty"`
	ShortTitle          []string              `json:"short-title,omitempty"           yaml:"short-title,omitempty"`
	Subtitle            []string              `json:"subtitle,omitempty"              yaml:"subtitle,omitempty"`
	Language            string                `json:"language,omitempty"              yaml:"language,omitempty"`
	Abstract            string                `json:"abstract,omitempty"              yaml:"abstract,omitempty"`
	ReferencesCount     int                   `json:"references-count"                yaml:"references-count"`
	IsReferencedByCount int                   `json:"is-referenced-by-count"          yaml:"is-referenced-by-count"`
	Source              string                `json:"source"                          yaml:"source"`
	JournalIssue        *Issue                `json:"journal-issue,omitempty"         yaml:"journal-issue,omitempty"`
	Prefix              string                `json:"prefix"                          yaml:"prefix"`
	DOI                 string                `json:"DOI"                             yaml:"DOI"`
	URL                 string                `json:"URL"                             yaml:"URL"`
	Member              string                `json:"member"                          yaml:"member"`
	Type                string                `json:"type"                            yaml:"type"`
	Created             *Date                 `json:"created,omitempty"               yaml:"created,omitempty"`
	Deposited           *Date                 `json:"deposited,omitempty"             yaml:"deposited,omitempty"`
	Indexed             *Date                 `json:"indexed,omitempty"               yaml:"indexed,omitempty"`
	Score               *float64              `json:"score,omitempty"                 yaml:"score,omitempty"`
	Issued              *PartialDate          `json:"issued,omitempty"                yaml:"issued,omitempty"`
	Posted              *PartialDate          `json:"posted,omitempty"                yaml:"posted,omitempty"`
	Accepted            *PartialDate          `json:"accepted,omitempty"              yaml:"accepted,omitempty"`
	PublishedPrint      *PartialDate          `json:"published-print,omitempty"       yaml:"published-print,omitempty"`
	PublishedOnline     *PartialDate          `json:"published-online,omitempty"      yaml:"published-online,omitempty"`
	ContainerTitle      []string              `json:"container-title,omitempty"       yaml:"container-title,omitempty"`
	ShortContainerTitle []string              `json:"short-container-title,omitempty" yaml:"short-container-title,omitempty"`
	GroupTitle          string                `json:"group-title,omitempty"           yaml:"group-title,omitempty"`
	Issue               string                `json:"issue,omitempty"                 yaml:"issue,omitempty"`
	Volume              string                `json:"volume,omitempty"                yaml:"volume,omitempty"`
	Page                string                `json:"page,omitempty"                  yaml:"page,omitempty"`
	ArticleNumber       string                `json:"article-number,omitempty"        yaml:"article-number,omitempty"`
	Subject             []string              `json:"subject,omitempty"               yaml:"subject,omitempty"`
	ISSN                []string              `json:"ISSN,omitempty"                  yaml:"ISSN,omitempty"`
	ISSNType            []ISSNType            `json:"issn-type,omitempty"             yaml:"issn-type,omitempty"`
	ISBN                []string              `json:"ISBN,omitempty"                  yaml:"ISBN,omitempty"`
	Archive             []string              `json:"archive,omitempty"               yaml:"archive,omitempty"`
	License             []License             `json:"license,omitempty"               yaml:"license,omitempty"`
	Funder              []WorkFunder          `json:"funder,omitempty"                yaml:"funder,omitempty"`
	Assertion           []Assertion           `json:"assertion,omitempty"             yaml:"assertion,omitempty"`
	Author              []Contributor         `json:"author,omitempty"                yaml:"author,omitempty"`
	Editor              []Contributor         `json:"editor,omitempty"                yaml:"editor,omitempty"`
	Chair               []Contributor         `json:"chair,omitempty"                 yaml:"chair,omitempty"`
	Translator          []Contributor         `json:"translator,omitempty"            yaml:"translator,omitempty"`
	UpdateTo            []Update              `json:"update-to,omitempty"             yaml:"update-to,omitempty"`
	UpdatePolicy        string                `json:"update-policy,omitempty"         yaml:"update-policy,omitempty"`
	Link                []ResourceLink        `json:"link,omitempty"                  yaml:"link,omitempty"`
	ClinicalTrialNumber []ClinicalTrialNumber `json:"clinical-trial-number,omitempty" yaml:"clinical-trial-number,omitempty"`
	AlternativeID       []string              `json:"alternative-id,omitempty"        yaml:"alternative-id,omitempty"`
	Reference           []Reference           `json:"reference,omitempty"             yaml:"reference,omitempty"`
	ContentDomain       *ContentDomain        `json:"content-domain,omitempty"        yaml:"content-domain,omitempty"`
	Relation            map[string][]Relation `json:"relation,omitempty"              yaml:"relation,omitempty"`
}

// workRequired are the keys every work record carries.
var workRequired = []string{"DOI", "type", "URL"}

// FirstTitle returns the primary title, or an empty string.
func (w *Work) FirstTitle() string {
	if len(w.Title) == 0 {
		return ""
	}

	return w.Title[0]
}

// WorkFunder is a funding body acknowledged by a work.
type WorkFunder struct {
	Name          string   `json:"name"                      yaml:"name"`
	DOI           string   `json:"DOI,omitempty"             yaml:"DOI,omitempty"`
	Award         []string `json:"award,omitempty"           yaml:"award,omitempty"`
	DOIAssertedBy string   `json:"doi-asserted-by,omitempty" yaml:"doi-asserted-by,omitempty"`
}

// ClinicalTrialNumber links a work to a registered trial.
type ClinicalTrialNumber struct {
	ClinicalTrialNumber string `json:"clinical-trial-number" yaml:"clinical-trial-number"`
	Registry            string `json:"registry"              yaml:"registry"`
	Type                string `json:"type,omitempty"        yaml:"type,omitempty"`
}

// Contributor is an author, editor, chair or translator.
type Contributor struct {
	Family             string        `json:"family"                        yaml:"family"`
	Given              string        `json:"given,omitempty"               yaml:"given,omitempty"`
	ORCID              string        `json:"ORCID,omitempty"               yaml:"ORCID,omitempty"`
	AuthenticatedORCID bool          `json:"authenticated-orcid,omitempty" yaml:"authenticated-orcid,omitempty"`
	Sequence           string        `json:"sequence,omitempty"            yaml:"sequence,omitempty"`
	Affiliation        []Affiliation `json:"affiliation,omitempty"         yaml:"affiliation,omitempty"`
}

// Affiliation is the institution of a contributor.
type Affiliation struct {
	Name string `json:"name" yaml:"name"`
}

// Update records that a work updates another work, e.g. a correction.
type Update struct {
	Updated PartialDate `json:"updated"         yaml:"updated"`
	DOI     string      `json:"DOI"             yaml:"DOI"`
	Type    string      `json:"type"            yaml:"type"`
	Label   string      `json:"label,omitempty" yaml:"label,omitempty"`
}

// Assertion is a Crossmark assertion attached to a work.
type Assertion struct {
	Name        string          `json:"name"                  yaml:"name"`
	Value       string          `json:"value"                 yaml:"value"`
	URL         string          `json:"URL,omitempty"         yaml:"URL,omitempty"`
	Explanation *AssertionLink  `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	Label       string          `json:"label,omitempty"       yaml:"label,omitempty"`
	Order       int             `json:"order,omitempty"       yaml:"order,omitempty"`
	Group       *AssertionGroup `json:"group,omitempty"       yaml:"group,omitempty"`
}

// AssertionLink points at an explanation of an assertion.
type AssertionLink struct {
	URL string `json:"URL" yaml:"URL"`
}

// AssertionGroup names the group an assertion belongs to.
type AssertionGroup struct {
	Name  string `json:"name"            yaml:"name"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Issue is the journal issue a work appeared in.
type Issue struct {
	PublishedPrint  *PartialDate `json:"published-print,omitempty"  yaml:"published-print,omitempty"`
	PublishedOnline *PartialDate `json:"published-online,omitempty" yaml:"published-online,omitempty"`
	Issue           string       `json:"issue,omitempty"            yaml:"issue,omitempty"`
}

// License is a license under which a work is distributed.
type License struct {
	ContentVersion string      `json:"content-version" yaml:"content-version"`
	DelayInDays    int         `json:"delay-in-days"   yaml:"delay-in-days"`
	Start          PartialDate `json:"start"           yaml:"start"`
	URL            string      `json:"URL"             yaml:"URL"`
}

// ResourceLink is a full-text link.
type ResourceLink struct {
	IntendedApplication string `json:"intended-application"   yaml:"intended-application"`
	ContentVersion      string `json:"content-version"        yaml:"content-version"`
	URL                 string `json:"URL"                    yaml:"URL"`
	ContentType         string `json:"content-type,omitempty" yaml:"content-type,omitempty"`
}

// Reference is one entry of a work's reference list.
type Reference struct {
	Key                string `json:"key"                           yaml:"key"`
	DOI                string `json:"DOI,omitempty"                 yaml:"DOI,omitempty"`
	DOIAssertedBy      string `json:"doi-asserted-by,omitempty"     yaml:"doi-asserted-by,omitempty"`
	Issue              string `json:"issue,omitempty"               yaml:"issue,omitempty"`
	FirstPage          string `json:"first-page,omitempty"          yaml:"first-page,omitempty"`
	Volume             string `json:"volume,omitempty"              yaml:"volume,omitempty"`
	Edition            string `json:"edition,omitempty"             yaml:"edition,omitempty"`
	Component          string `json:"component,omitempty"           yaml:"component,omitempty"`
	StandardDesignator string `json:"standard-designator,omitempty" yaml:"standard-designator,omitempty"`
	StandardsBody      string `json:"standards-body,omitempty"      yaml:"standards-body,omitempty"`
	Author             string `json:"author,omitempty"              yaml:"author,omitempty"`
	Year               string `json:"year,omitempty"                yaml:"year,omitempty"`
	Unstructured       string `json:"unstructured,omitempty"        yaml:"unstructured,omitempty"`
	JournalTitle       string `json:"journal-title,omitempty"       yaml:"journal-title,omitempty"`
	ArticleTitle       string `json:"article-title,omitempty"       yaml:"article-title,omitempty"`
	SeriesTitle        string `json:"series-title,omitempty"        yaml:"series-title,omitempty"`
	VolumeTitle        string `json:"volume-title,omitempty"        yaml:"volume-title,omitempty"`
	ISSN               string `json:"ISSN,omitempty"                yaml:"ISSN,omitempty"`
	ISSNType           string `json:"issn-type,omitempty"           yaml:"issn-type,omitempty"`
	ISBN               string `json:"ISBN,omitempty"                yaml:"ISBN,omitempty"`
	ISBNType           string `json:"isbn-type,omitempty"           yaml:"isbn-type,omitempty"`
}

// ISSNType qualifies an ISSN as print or electronic.
type ISSNType struct {
	Value string `json:"value" yaml:"value"`
	Type  string `json:"type"  yaml:"type"`
}

// ContentDomain lists the domains a work's Crossmark applies to.
type ContentDomain struct {
	Domain               []string `json:"domain"                yaml:"domain"`
	CrossmarkRestriction bool     `json:"crossmark-restriction" yaml:"crossmark-restriction"`
}

// Relation is a typed link from a work to another object.
type Relation struct {
	IDType     string `json:"id-type,omitempty"     yaml:"id-type,omitempty"`
	ID         string `json:"id,omitempty"          yaml:"id,omitempty"`
	AssertedBy string `json:"asserted-by,omitempty" yaml:"asserted-by,omitempty"`
}
