package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/crossref-client/pkg/crossref"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/query"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/response"
)

// JournalsClient implements crossref.JournalsClient.
type JournalsClient struct {
	worksOf
}

// NewJournalsClient creates a new journals client.
func NewJournalsClient(fetcher crossref.Fetcher, logger crossref.Logger) *JournalsClient {
	return &JournalsClient{
		worksOf: worksOf{
			fetcher:  fetcher,
			logger:   logger,
			combined: query.JournalWorks,
			family:   "journal",
		},
	}
}

// Get implements crossref.JournalsClient.Get.
func (c *JournalsClient) Get(ctx context.Context, issn string) (*response.Journal, error) {
	journal, err := fetch[*response.Journal](ctx, c.fetcher, query.JournalByISSN(issn))
	if err != nil {
		return nil, fmt.Errorf("getting journal: %w", err)
	}

	return journal, nil
}

// List implements crossref.JournalsClient.List.
func (c *JournalsClient) List(ctx context.Context, q query.JournalsQuery) (*response.JournalList, error) {
	list, err := fetch[*response.JournalList](ctx, c.fetcher, query.JournalsMatching(q))
	if err != nil {
		return nil, fmt.Errorf("listing journals: %w", err)
	}

	return list, nil
}
