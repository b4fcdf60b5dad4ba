package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/crossref-client/pkg/crossref"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/query"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/response"
)

// PrefixesClient implements crossref.PrefixesClient.
type PrefixesClient struct {
	worksOf
}

// NewPrefixesClient creates a new prefixes client.
func NewPrefixesClient(fetcher crossref.Fetcher, logger crossref.Logger) *PrefixesClient {
	return &PrefixesClient{
		worksOf: worksOf{
			fetcher:  fetcher,
			logger:   logger,
			combined: query.PrefixWorks,
			family:   "prefix",
		},
	}
}

// Get implements crossref.PrefixesClient.Get.
func (c *PrefixesClient) Get(ctx context.Context, prefix string) (*response.Prefix, error) {
	p, err := fetch[*response.Prefix](ctx, c.fetcher, query.PrefixByID(prefix))
	if err != nil {
		return nil, fmt.Errorf("getting prefix: %w", err)
	}

	return p, nil
}
