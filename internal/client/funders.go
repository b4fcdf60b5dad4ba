package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/crossref-client/pkg/crossref"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/query"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/response"
)

// FundersClient implements crossref.FundersClient.
type FundersClient struct {
	worksOf
}

// NewFundersClient creates a new funders client.
func NewFundersClient(fetcher crossref.Fetcher, logger crossref.Logger) *FundersClient {
	return &FundersClient{
		worksOf: worksOf{
			fetcher:  fetcher,
			logger:   logger,
			combined: query.FunderWorks,
			family:   "funder",
		},
	}
}

// Get implements crossref.FundersClient.Get.
func (c *FundersClient) Get(ctx context.Context, id string) (*response.Funder, error) {
	funder, err := fetch[*response.Funder](ctx, c.fetcher, query.FunderByID(id))
	if err != nil {
		return nil, fmt.Errorf("getting funder: %w", err)
	}

	return funder, nil
}

// List implements crossref.FundersClient.List.
func (c *FundersClient) List(ctx context.Context, q query.FundersQuery) (*response.FunderList, error) {
	list, err := fetch[*response.FunderList](ctx, c.fetcher, query.FundersMatching(q))
	if err != nil {
		return nil, fmt.Errorf("listing funders: %w", err)
	}

	return list, nil
}
