package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/crossref-client/pkg/crossref"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/query"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/response"
)

// MembersClient implements crossref.MembersClient.
type MembersClient struct {
	worksOf
}

// NewMembersClient creates a new members client.
func NewMembersClient(fetcher crossref.Fetcher, logger crossref.Logger) *MembersClient {
	return &MembersClient{
		worksOf: worksOf{
			fetcher:  fetcher,
			logger:   logger,
			combined: query.MemberWorks,
			family:   "member",
		},
	}
}

// Get implements crossref.MembersClient.Get.
func (c *MembersClient) Get(ctx context.Context, id string) (*response.Member, error) {
	member, err := fetch[*response.Member](ctx, c.fetcher, query.MemberByID(id))
	if err != nil {
		return nil, fmt.Errorf("getting member: %w", err)
	}

	return member, nil
}

// List implements crossref.MembersClient.List.
func (c *MembersClient) List(ctx context.Context, q query.MembersQuery) (*response.MemberList, error) {
	list, err := fetch[*response.MemberList](ctx, c.fetcher, query.MembersMatching(q))
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}

	return list, nil
}
