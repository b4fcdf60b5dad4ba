package query

// WorkType identifies a kind of registered work, e.g. `journal-article`.
type WorkType string

// Work types known to the API.
const (
	TypeBookSection        WorkType = "book-section"
	TypeMonograph          WorkType = "monograph"
	TypeReport             WorkType = "report"
	TypePeerReview         WorkType = "peer-review"
	TypeBookTrack          WorkType = "book-track"
	TypeJournalArticle     WorkType = "journal-article"
	TypeBookPart           WorkType = "book-part"
	TypeOther              WorkType = "other"
	TypeBook               WorkType = "book"
	TypeJournalVolume      WorkType = "journal-volume"
	TypeBookSet            WorkType = "book-set"
	TypeReferenceEntry     WorkType = "reference-entry"
	TypeProceedingsArticle WorkType = "proceedings-article"
	TypeJournal            WorkType = "journal"
	TypeComponent          WorkType = "component"
	TypeBookChapter        WorkType = "book-chapter"
	TypeProceedingsSeries  WorkType = "proceedings-series"
	TypeReportSeries       WorkType = "report-series"
	TypeProceedings        WorkType = "proceedings"
	TypeStandard           WorkType = "standard"
	TypeReferenceBook      WorkType = "reference-book"
	TypePostedContent      WorkType = "posted-content"
	TypeJournalIssue       WorkType = "journal-issue"
	TypeDissertation       WorkType = "dissertation"
	TypeDataset            WorkType = "dataset"
	TypeBookSeries         WorkType = "book-series"
	TypeEditedBook         WorkType = "edited-book"
	TypeStandardSeries     WorkType = "standard-series"
)

var workTypeLabels = map[WorkType]string{
	TypeBookSection:        "Book Section",
	TypeMonograph:          "Monograph",
	TypeReport:             "Report",
	TypePeerReview:         "Peer Review",
	TypeBookTrack:          "Book Track",
	TypeJournalArticle:     "Journal Article",
	TypeBookPart:           "Book Part",
	TypeOther:              "Other",
	TypeBook:               "Book",
	TypeJournalVolume:      "Journal Volume",
	TypeBookSet:            "Book Set",
	TypeReferenceEntry:     "Reference Entry",
	TypeProceedingsArticle: "Proceedings Article",
	TypeJournal:            "Journal",
	TypeComponent:          "Component",
	TypeBookChapter:        "Book Chapter",
	TypeProceedingsSeries:  "Proceedings Series",
	TypeReportSeries:       "Report Series",
	TypeProceedings:        "Proceedings",
	TypeStandard:           "Standard",
	TypeReferenceBook:      "Reference Book",
	TypePostedContent:      "Posted Content",
	TypeJournalIssue:       "Journal Issue",
	TypeDissertation:       "Dissertation",
	TypeDataset:            "Dataset",
	TypeBookSeries:         "Book Series",
	TypeEditedBook:         "Edited Book",
	TypeStandardSeries:     "Standard Series",
}

// WorkTypes lists every known work type in registry order.
func WorkTypes() []WorkType {
	return []WorkType{
		TypeBookSection, TypeMonograph, TypeReport, TypePeerReview, TypeBookTrack,
		TypeJournalArticle, TypeBookPart, TypeOther, TypeBook, TypeJournalVolume,
		TypeBookSet, TypeReferenceEntry, TypeProceedingsArticle, TypeJournal,
		TypeComponent, TypeBookChapter, TypeProceedingsSeries, TypeReportSeries,
		TypeProceedings, TypeStandard, TypeReferenceBook, TypePostedContent,
		TypeJournalIssue, TypeDissertation, TypeDataset, TypeBookSeries,
		TypeEditedBook, TypeStandardSeries,
	}
}

// ParseWorkType resolves a type id. Unknown ids yield a *RouteError.
func ParseWorkType(id string) (WorkType, error) {
	t := WorkType(id)
	if _, ok := workTypeLabels[t]; !ok {
		return "", &RouteError{Op: "parse work type", Value: id, Err: ErrInvalidTypeName}
	}

	return t, nil
}

// ID returns the wire id of the type.
func (t WorkType) ID() string {
	return string(t)
}

// Label returns the human readable name of the type, or the id when unknown.
func (t WorkType) Label() string {
	if label, ok := workTypeLabels[t]; ok {
		return label
	}

	return string(t)
}

// String implements fmt.Stringer.
func (t WorkType) String() string {
	return string(t)
}
