package crossref

import (
	"context"
	"time"

	"github.com/fivetwenty-io/crossref-client/pkg/crossref/query"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/response"
)

// Fetcher executes a request and decodes the envelope it returns. The deep
// pager and every resource client are built on it.
type Fetcher interface {
	Do(ctx context.Context, request query.ResourceRequest) (*response.Envelope, error)
}

// WorksClient defines operations on the works family.
type WorksClient interface {
	Get(ctx context.Context, doi string) (*response.Work, error)
	Agency(ctx context.Context, doi string) (*response.WorkAgency, error)
	List(ctx context.Context, q query.WorksQuery) (*response.WorkList, error)
	Search(ctx context.Context, term string) (*response.WorkList, error)
	RandomDOIs(ctx context.Context, n int) ([]string, error)
	DeepPage(ctx context.Context, q query.WorksQuery) *DeepPager
}

// WorksOf is implemented by every family whose records own works.
type WorksOf interface {
	Works(ctx context.Context, id string, q query.WorksQuery) (*response.WorkList, error)
	DeepPageWorks(ctx context.Context, id string, q query.WorksQuery) *DeepPager
}

// FundersClient defines operations on the funder registry.
type FundersClient interface {
	WorksOf
	Get(ctx context.Context, id string) (*response.Funder, error)
	List(ctx context.Context, q query.FundersQuery) (*response.FunderList, error)
}

// MembersClient defines operations on the member registry.
type MembersClient interface {
	WorksOf
	Get(ctx context.Context, id string) (*response.Member, error)
	List(ctx context.Context, q query.MembersQuery) (*response.MemberList, error)
}

// JournalsClient defines operations on journals, identified by ISSN.
type JournalsClient interface {
	WorksOf
	Get(ctx context.Context, issn string) (*response.Journal, error)
	List(ctx context.Context, q query.JournalsQuery) (*response.JournalList, error)
}

// PrefixesClient defines operations on DOI prefixes.
type PrefixesClient interface {
	WorksOf
	Get(ctx context.Context, prefix string) (*response.Prefix, error)
}

// TypesClient defines operations on the work type registry.
type TypesClient interface {
	WorksOf
	Get(ctx context.Context, id string) (*response.WorkType, error)
	List(ctx context.Context) (*response.TypeList, error)
}

// Client is the entry point to every resource family.
type Client interface {
	Fetcher
	Works() WorksClient
	Funders() FundersClient
	Members() MembersClient
	Journals() JournalsClient
	Prefixes() PrefixesClient
	Types() TypesClient
}

// Logger interface for client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a crossref.Client.
//
// # Polite pool
//
// Setting Mailto adds a `mailto:` contact to the User-Agent header, which
// routes requests to the API's polite pool.
type Config struct {
	// BaseURL: root of the API. Defaults to https://api.crossref.org.
	// crossrefclient.New trims a trailing slash and adds "https://" if no
	// scheme is present.
	BaseURL string
	// Mailto: contact address announced in the User-Agent header.
	Mailto string
	// UserAgent: product token sent before the mailto contact.
	UserAgent string

	// HTTPTimeout: per-request timeout of the transport.
	HTTPTimeout time.Duration
	// RetryMax: retries of the transport for 5xx, 429 and connection errors.
	// Zero, the default, disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the transport and the pager.
	Logger Logger
}
