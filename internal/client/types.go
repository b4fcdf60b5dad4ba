package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/crossref-client/pkg/crossref"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/query"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/response"
)

// TypesClient implements crossref.TypesClient.
type TypesClient struct {
	worksOf
}

// NewTypesClient creates a new types client.
func NewTypesClient(fetcher crossref.Fetcher, logger crossref.Logger) *TypesClient {
	return &TypesClient{
		worksOf: worksOf{
			fetcher: fetcher,
			logger:  logger,
			combined: func(id string, q query.WorksQuery) query.ResourceRequest {
				return query.TypeWorks(query.WorkType(id), q)
			},
			family: "type",
		},
	}
}

// Get implements crossref.TypesClient.Get.
func (c *TypesClient) Get(ctx context.Context, id string) (*response.WorkType, error) {
	workType, err := fetch[*response.WorkType](ctx, c.fetcher, query.TypeByID(id))
	if err != nil {
		return nil, fmt.Errorf("getting type: %w", err)
	}

	return workType, nil
}

// List implements crossref.TypesClient.List.
func (c *TypesClient) List(ctx context.Context) (*response.TypeList, error) {
	list, err := fetch[*response.TypeList](ctx, c.fetcher, query.AllTypes())
	if err != nil {
		return nil, fmt.Errorf("listing types: %w", err)
	}

	return list, nil
}
