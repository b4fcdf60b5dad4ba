package query

import (
	"slices"
	"strings"
	"time"
)

// WorkFilter narrows a works query. Filters of one query are combined with AND.
type WorkFilter struct{ filter }

var workFilterKinds = map[string]payloadKind{
	"has-funder":                payloadFlag,
	"funder":                    payloadString,
	"location":                  payloadString,
	"prefix":                    payloadString,
	"member":                    payloadString,
	"from-index-date":           payloadDate,
	"until-index-date":          payloadDate,
	"from-deposit-date":         payloadDate,
	"until-deposit-date":        payloadDate,
	"from-update-date":          payloadDate,
	"until-update-date":         payloadDate,
	"from-created-date":         payloadDate,
	"until-created-date":        payloadDate,
	"from-pub-date":             payloadDate,
	"until-pub-date":            payloadDate,
	"from-online-pub-date":      payloadDate,
	"until-online-pub-date":     payloadDate,
	"from-print-pub-date":       payloadDate,
	"until-print-pub-date":      payloadDate,
	"from-posted-date":          payloadDate,
	"until-posted-date":         payloadDate,
	"from-accepted-date":        payloadDate,
	"until-accepted-date":       payloadDate,
	"has-license":               payloadFlag,
	"license.url":               payloadString,
	"license.version":           payloadString,
	"license.delay":             payloadInt,
	"has-full-text":             payloadFlag,
	"full-text.version":         payloadString,
	"full-text.type":            payloadString,
	"full-text.application":     payloadString,
	"has-references":            payloadFlag,
	"reference-visibility":      payloadVisibility,
	"has-archive":               payloadFlag,
	"archive":                   payloadString,
	"has-orcid":                 payloadFlag,
	"has-authenticated-orcid":   payloadFlag,
	"orcid":                     payloadString,
	"issn":                      payloadString,
	"isbn":                      payloadString,
	"type":                      payloadWorkType,
	"directory":                 payloadString,
	"doi":                       payloadString,
	"updates":                   payloadString,
	"is-update":                 payloadFlag,
	"has-update-policy":         payloadFlag,
	"container-title":           payloadString,
	"category-name":             payloadString,
	"type-name":                 payloadString,
	"award.number":              payloadString,
	"award.funder":              payloadString,
	"has-assertion":             payloadFlag,
	"assertion-group":           payloadString,
	"assertion":                 payloadString,
	"has-affiliation":           payloadFlag,
	"alternative-id":            payloadString,
	"article-number":            payloadString,
	"has-abstract":              payloadFlag,
	"has-clinical-trial-number": payloadFlag,
	"content-domain":            payloadString,
	"has-content-domain":        payloadFlag,
	"has-domain-restriction":    payloadFlag,
	"has-relation":              payloadFlag,
	"relation.type":             payloadString,
	"relation.object":           payloadString,
	"relation.object-type":      payloadString,
}

// ParseWorkFilter recovers a works filter from its wire text, e.g.
// `from-pub-date:2020-01-01` or `has-orcid`.
func ParseWorkFilter(raw string) (WorkFilter, error) {
	if key, value, ok := strings.Cut(strings.TrimSpace(raw), ":"); ok && key == "isbn" && value != "" {
		return ISBN(value), nil
	}

	f, err := parseFilter(raw, workFilterKinds)
	if err != nil {
		return WorkFilter{}, err
	}

	return WorkFilter{f}, nil
}

// WorkFilterKeys lists the wire names of every works filter in sorted order.
func WorkFilterKeys() []string {
	keys := make([]string, 0, len(workFilterKinds))
	for key := range workFilterKinds {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}

// HasFunder selects works with funding information.
func HasFunder() WorkFilter { return WorkFilter{flag("has-funder")} }

// Funder selects works funded by the funder with the given id.
func Funder(id string) WorkFilter { return WorkFilter{text("funder", id)} }

// Location selects works whose funder is located in country.
func Location(country string) WorkFilter { return WorkFilter{text("location", country)} }

// Prefix selects works owned by a DOI prefix, e.g. 10.1016.
func Prefix(prefix string) WorkFilter { return WorkFilter{text("prefix", prefix)} }

// Member selects works deposited by a member id.
func Member(id string) WorkFilter { return WorkFilter{text("member", id)} }

// FromIndexDate selects works indexed on or after t.
func FromIndexDate(t time.Time) WorkFilter { return WorkFilter{date("from-index-date", t)} }

// UntilIndexDate selects works indexed on or before t.
func UntilIndexDate(t time.Time) WorkFilter { return WorkFilter{date("until-index-date", t)} }

// FromDepositDate selects works last deposited on or after t.
func FromDepositDate(t time.Time) WorkFilter { return WorkFilter{date("from-deposit-date", t)} }

// UntilDepositDate selects works last deposited on or before t.
func UntilDepositDate(t time.Time) WorkFilter { return WorkFilter{date("until-deposit-date", t)} }

// FromUpdateDate selects works updated on or after t.
func FromUpdateDate(t time.Time) WorkFilter { return WorkFilter{date("from-update-date", t)} }

// UntilUpdateDate selects works updated on or before t.
func UntilUpdateDate(t time.Time) WorkFilter { return WorkFilter{date("until-update-date", t)} }

// FromCreatedDate selects works first deposited on or after t.
func FromCreatedDate(t time.Time) WorkFilter { return WorkFilter{date("from-created-date", t)} }

// UntilCreatedDate selects works first deposited on or before t.
func UntilCreatedDate(t time.Time) WorkFilter { return WorkFilter{date("until-created-date", t)} }

// FromPubDate selects works published on or after t.
func FromPubDate(t time.Time) WorkFilter { return WorkFilter{date("from-pub-date", t)} }

// UntilPubDate selects works published on or before t.
func UntilPubDate(t time.Time) WorkFilter { return WorkFilter{date("until-pub-date", t)} }

// FromOnlinePubDate selects works published online on or after t.
func FromOnlinePubDate(t time.Time) WorkFilter {
	return WorkFilter{date("from-online-pub-date", t)}
}

// UntilOnlinePubDate selects works published online on or before t.
func UntilOnlinePubDate(t time.Time) WorkFilter {
	return WorkFilter{date("until-online-pub-date", t)}
}

// FromPrintPubDate selects works published in print on or after t.
func FromPrintPubDate(t time.Time) WorkFilter {
	return WorkFilter{date("from-print-pub-date", t)}
}

// UntilPrintPubDate selects works published in print on or before t.
func UntilPrintPubDate(t time.Time) WorkFilter {
	return WorkFilter{date("until-print-pub-date", t)}
}

// FromPostedDate selects posted content posted on or after t.
func FromPostedDate(t time.Time) WorkFilter { return WorkFilter{date("from-posted-date", t)} }

// UntilPostedDate selects posted content posted on or before t.
func UntilPostedDate(t time.Time) WorkFilter { return WorkFilter{date("until-posted-date", t)} }

// FromAcceptedDate selects works accepted on or after t.
func FromAcceptedDate(t time.Time) WorkFilter { return WorkFilter{date("from-accepted-date", t)} }

// UntilAcceptedDate selects works accepted on or before t.
func UntilAcceptedDate(t time.Time) WorkFilter {
	return WorkFilter{date("until-accepted-date", t)}
}

// HasLicense selects works with at least one license.
func HasLicense() WorkFilter { return WorkFilter{flag("has-license")} }

// LicenseURL selects works licensed under url.
func LicenseURL(url string) WorkFilter { return WorkFilter{text("license.url", url)} }

// LicenseVersion selects works with a license of the given version, e.g. vor.
func LicenseVersion(version string) WorkFilter {
	return WorkFilter{text("license.version", version)}
}

// LicenseDelay selects works whose license starts at most days after publication.
func LicenseDelay(days int) WorkFilter { return WorkFilter{number("license.delay", days)} }

// HasFullText selects works with full-text links.
func HasFullText() WorkFilter { return WorkFilter{flag("has-full-text")} }

// FullTextVersion selects works with a full-text link of the given version.
func FullTextVersion(version string) WorkFilter {
	return WorkFilter{text("full-text.version", version)}
}

// FullTextType selects works with a full-text link of the given content type.
func FullTextType(contentType string) WorkFilter {
	return WorkFilter{text("full-text.type", contentType)}
}

// FullTextApplication selects works with a full-text link intended for application.
func FullTextApplication(application string) WorkFilter {
	return WorkFilter{text("full-text.application", application)}
}

// HasReferences selects works that deposited references.
func HasReferences() WorkFilter { return WorkFilter{flag("has-references")} }

// ReferenceVisibility selects works whose references have the given visibility.
func ReferenceVisibility(v Visibility) WorkFilter {
	return WorkFilter{text("reference-visibility", string(v))}
}

// HasArchive selects works with an archive declared.
func HasArchive() WorkFilter { return WorkFilter{flag("has-archive")} }

// Archive selects works archived by the named archive, e.g. Portico.
func Archive(name string) WorkFilter { return WorkFilter{text("archive", name)} }

// HasORCID selects works with at least one ORCID.
func HasORCID() WorkFilter { return WorkFilter{flag("has-orcid")} }

// HasAuthenticatedORCID selects works with at least one authenticated ORCID.
func HasAuthenticatedORCID() WorkFilter { return WorkFilter{flag("has-authenticated-orcid")} }

// ORCID selects works with a contributor identified by orcid.
func ORCID(orcid string) WorkFilter { return WorkFilter{text("orcid", orcid)} }

// ISSN selects works published in the journal with the given ISSN.
func ISSN(issn string) WorkFilter { return WorkFilter{text("issn", issn)} }

// ISBN selects works with the given ISBN. Hyphens and spaces are stripped.
func ISBN(isbn string) WorkFilter { return WorkFilter{text("isbn", NormalizeISBN(isbn))} }

// Type selects works of the given type.
func Type(t WorkType) WorkFilter { return WorkFilter{text("type", t.ID())} }

// Directory selects works in the named directory, e.g. DOAJ.
func Directory(name string) WorkFilter { return WorkFilter{text("directory", name)} }

// DOI selects the work with the given DOI.
func DOI(doi string) WorkFilter { return WorkFilter{text("doi", doi)} }

// Updates selects works that update the work with the given DOI.
func Updates(doi string) WorkFilter { return WorkFilter{text("updates", doi)} }

// IsUpdate selects works that update another work.
func IsUpdate() WorkFilter { return WorkFilter{flag("is-update")} }

// HasUpdatePolicy selects works with a Crossmark update policy.
func HasUpdatePolicy() WorkFilter { return WorkFilter{flag("has-update-policy")} }

// ContainerTitle selects works published in a container with the given title.
func ContainerTitle(title string) WorkFilter {
	return WorkFilter{text("container-title", title)}
}

// CategoryName selects works in the given subject category.
func CategoryName(name string) WorkFilter { return WorkFilter{text("category-name", name)} }

// TypeName selects works by type label.
func TypeName(name string) WorkFilter { return WorkFilter{text("type-name", name)} }

// AwardNumber selects works funded by the given award number.
func AwardNumber(number string) WorkFilter { return WorkFilter{text("award.number", number)} }

// AwardFunder selects works with an award from the given funder id.
func AwardFunder(id string) WorkFilter { return WorkFilter{text("award.funder", id)} }

// HasAssertion selects works with Crossmark assertions.
func HasAssertion() WorkFilter { return WorkFilter{flag("has-assertion")} }

// AssertionGroup selects works with an assertion in the named group.
func AssertionGroup(group string) WorkFilter {
	return WorkFilter{text("assertion-group", group)}
}

// Assertion selects works with the named assertion.
func Assertion(name string) WorkFilter { return WorkFilter{text("assertion", name)} }

// HasAffiliation selects works with contributor affiliations.
func HasAffiliation() WorkFilter { return WorkFilter{flag("has-affiliation")} }

// AlternativeID selects works with the given publisher-assigned identifier.
func AlternativeID(id string) WorkFilter { return WorkFilter{text("alternative-id", id)} }

// ArticleNumber selects works with the given article number.
func ArticleNumber(number string) WorkFilter {
	return WorkFilter{text("article-number", number)}
}

// HasAbstract selects works that include an abstract.
func HasAbstract() WorkFilter { return WorkFilter{flag("has-abstract")} }

// HasClinicalTrialNumber selects works that reference a clinical trial.
func HasClinicalTrialNumber() WorkFilter {
	return WorkFilter{flag("has-clinical-trial-number")}
}

// ContentDomain selects works whose Crossmark content domain is domain.
func ContentDomain(domain string) WorkFilter {
	return WorkFilter{text("content-domain", domain)}
}

// HasContentDomain selects works with at least one content domain.
func HasContentDomain() WorkFilter { return WorkFilter{flag("has-content-domain")} }

// HasDomainRestriction selects works with Crossmark domain restrictions.
func HasDomainRestriction() WorkFilter { return WorkFilter{flag("has-domain-restriction")} }

// HasRelation selects works with at least one relation.
func HasRelation() WorkFilter { return WorkFilter{flag("has-relation")} }

// RelationType selects works with a relation of the given type.
func RelationType(relation string) WorkFilter {
	return WorkFilter{text("relation.type", relation)}
}

// RelationObject selects works related to the given object identifier.
func RelationObject(id string) WorkFilter { return WorkFilter{text("relation.object", id)} }

// RelationObjectType selects works related to an object of the given identifier type.
func RelationObjectType(idType string) WorkFilter {
	return WorkFilter{text("relation.object-type", idType)}
}
