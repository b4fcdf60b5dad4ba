// Package crossref provides the interfaces, configuration, errors and
// deep-paging iterator for working with the Crossref REST API.
//
// # Overview
//
// The crossref package defines the resource-oriented client interfaces
// (WorksClient, FundersClient, MembersClient, JournalsClient, PrefixesClient
// and TypesClient) and the Fetcher they are built on. Requests are described
// with the query subpackage and responses are decoded by the response
// subpackage. A concrete implementation is provided by the crossrefclient
// package.
//
// # Deep paging
//
// DeepPager walks every page of a works list by following the `next-cursor`
// token of each page. It stops on the first empty page:
//
//	pager := cli.Works().DeepPage(ctx, query.NewWorksSearch("ecology"))
//	for {
//	  page, err := pager.Next()
//	  if errors.Is(err, crossref.ErrNoMorePages) { break }
//	  if err != nil { return err }
//	  _ = page.Items
//	}
//
// # Errors
//
// A failed call returns one of TransportError, ResourceNotFoundError,
// ValidationError, DecodeError, RouteError or UnexpectedItemError, wrapped
// with the operation that failed. Helpers such as IsNotFound,
// IsValidationFailure, IsTransport and IsDecode branch on the common cases.
package crossref
