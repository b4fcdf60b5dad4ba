// Package query builds the routes of the Crossref REST API.
//
// A ResourceRequest names a resource family and either an identifier, a
// query, or a combined "works of" lookup. Queries are immutable values built
// with With* methods, and Route renders the request as a path plus query
// string with parameters in a fixed order:
//
//	q := query.NewWorksSearch("machine learning").
//	  WithFilter(query.FromPubDate(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))).
//	  WithOrder(query.OrderDesc)
//
//	route, err := query.WorksMatching(q).Route()
//	// /works?query=machine+learning&filter=from-pub-date:2020-01-01&order=desc
//
// A Sample window replaces every other parameter of the query it is attached to.
package query
