package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/crossref-client/pkg/crossref"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/query"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/response"
)

// WorksClient implements crossref.WorksClient.
type WorksClient struct {
	fetcher crossref.Fetcher
	logger  crossref.Logger
}

// NewWorksClient creates a new works client.
func NewWorksClient(fetcher crossref.Fetcher, logger crossref.Logger) *WorksClient {
	return &WorksClient{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Get implements crossref.WorksClient.Get.
func (c *WorksClient) Get(ctx context.Context, doi string) (*response.Work, error) {
	work, err := fetch[*response.Work](ctx, c.fetcher, query.WorkByDOI(doi))
	if err != nil {
		return nil, fmt.Errorf("getting work: %w", err)
	}

	return work, nil
}

// Agency implements crossref.WorksClient.Agency.
func (c *WorksClient) Agency(ctx context.Context, doi string) (*response.WorkAgency, error) {
	agency, err := fetch[*response.WorkAgency](ctx, c.fetcher, query.AgencyOf(doi))
	if err != nil {
		return nil, fmt.Errorf("getting work agency: %w", err)
	}

	return agency, nil
}

// List implements crossref.WorksClient.List.
func (c *WorksClient) List(ctx context.Context, q query.WorksQuery) (*response.WorkList, error) {
	list, err := fetch[*response.WorkList](ctx, c.fetcher, query.WorksMatching(q))
	if err != nil {
		return nil, fmt.Errorf("listing works: %w", err)
	}

	return list, nil
}

// Search implements crossref.WorksClient.Search.
func (c *WorksClient) Search(ctx context.Context, term string) (*response.WorkList, error) {
	list, err := fetch[*response.WorkList](ctx, c.fetcher, query.WorksMatching(query.NewWorksSearch(term)))
	if err != nil {
		return nil, fmt.Errorf("searching works: %w", err)
	}

	return list, nil
}

// RandomDOIs implements crossref.WorksClient.RandomDOIs.
func (c *WorksClient) RandomDOIs(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		return nil, fmt.Errorf("sampling %d works: %w", n, crossref.ErrNegativeSample)
	}

	q := query.NewWorksQuery().WithWindow(query.Sample(n))

	list, err := fetch[*response.WorkList](ctx, c.fetcher, query.WorksMatching(q))
	if err != nil {
		return nil, fmt.Errorf("sampling works: %w", err)
	}

	dois := make([]string, 0, len(list.Items))
	for _, work := range list.Items {
		dois = append(dois, work.DOI)
	}

	return dois, nil
}

// DeepPage implements crossref.WorksClient.DeepPage.
func (c *WorksClient) DeepPage(ctx context.Context, q query.WorksQuery) *crossref.DeepPager {
	return crossref.NewDeepPager(ctx, c.fetcher, query.WorksMatching(q)).WithLogger(c.logger)
}

// worksOf is embedded by every family whose records own works.
type worksOf struct {
	fetcher  crossref.Fetcher
	logger   crossref.Logger
	combined func(id string, q query.WorksQuery) query.ResourceRequest
	family   string
}

// Works implements crossref.WorksOf.Works.
func (w worksOf) Works(ctx context.Context, id string, q query.WorksQuery) (*response.WorkList, error) {
	list, err := fetch[*response.WorkList](ctx, w.fetcher, w.combined(id, q))
	if err != nil {
		return nil, fmt.Errorf("listing works of %s %s: %w", w.family, id, err)
	}

	return list, nil
}

// DeepPageWorks implements crossref.WorksOf.DeepPageWorks.
func (w worksOf) DeepPageWorks(ctx context.Context, id string, q query.WorksQuery) *crossref.DeepPager {
	return crossref.NewDeepPager(ctx, w.fetcher, w.combined(id, q)).WithLogger(w.logger)
}
