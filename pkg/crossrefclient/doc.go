// Package crossrefclient provides the primary entry point for constructing a
// Crossref REST API client that implements the crossref.Client interface.
//
// It layers configuration and HTTP transport on top of the resource
// interfaces defined in the crossref package. Most applications import
// crossrefclient to build a client, then use the returned crossref.Client to
// reach the resource families: Works(), Funders(), Members(), Journals(),
// Prefixes() and Types().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/crossref-client/pkg/crossref"
//	  "github.com/fivetwenty-io/crossref-client/pkg/crossref/query"
//	  "github.com/fivetwenty-io/crossref-client/pkg/crossrefclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := crossrefclient.New(&crossref.Config{
//	    Mailto: "librarian@example.org", // joins the polite pool
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  q := query.NewWorksSearch("global state").
//	    WithFilter(query.HasFunder()).
//	    WithWindow(query.Rows(5))
//
//	  works, err := cli.Members().Works(ctx, "98", q)
//	  if err != nil { log.Fatal(err) }
//	  _ = works
//	}
//
// # Base URL
//
// Config.BaseURL defaults to https://api.crossref.org. A trailing slash is
// trimmed and https:// is added when the value carries no scheme.
//
// # Helpers
//
// The package also provides convenience constructors NewDefault,
// NewWithBaseURL and NewPolite that wrap New with the appropriate
// configuration.
package crossrefclient
