// Package orgsearch provides an embedded Go client for the orgsearch
// document search service backed by Redis with the search and JSON modules.
//
// The client runs the full search pipeline in-process against a Redis
// instance, without going through the HTTP server:
//
//	client, _ := orgsearch.New(ctx, orgsearch.WithRedis("localhost:6379", ""))
//	defer client.Close()
//
//	_ = client.EnsureIndexes(ctx, orgsearch.ModeFederation)
//	res, _ := client.SearchCompanies(ctx, orgsearch.CompanySearchRequest{
//	    Reports: orgsearch.ReportFilter{Status: "published"},
//	})
//
// Nested mode works the same way through SearchPeople, which applies the
// single-element child conjunction before returning matches.
package orgsearch
