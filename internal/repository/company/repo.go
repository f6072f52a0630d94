// Package company persists and queries the parent index.
package company

import (
	"context"
	"fmt"

	"github.com/arkline/orgsearch/internal/db"
	"github.com/arkline/orgsearch/internal/domain"
	"github.com/arkline/orgsearch/internal/domain/search/page"
	"github.com/arkline/orgsearch/internal/domain/search/query"
)

// store is the consumer interface for company persistence (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONSetMulti(ctx context.Context, items []db.JSONSetItem) []error
	Search(ctx context.Context, q *db.Query) (*db.SearchResult, error)
}

// Repo implements company persistence over the search engine.
type Repo struct {
	store store
}

// New creates a company repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Upsert writes a single company; same-ID writes overwrite.
func (r *Repo) Upsert(ctx context.Context, c domain.Company) error {
	data, err := marshalCompany(c)
	if err != nil {
		return err
	}
	if err := r.store.JSONSet(ctx, docKey(c.ID), "$", data); err != nil {
		return fmt.Errorf("json.set company %s: %w", c.ID, err)
	}
	return nil
}

// BulkUpsert pipelines a batch of companies. Best-effort: the returned
// slice is index-aligned with the input, nil meaning that write succeeded.
func (r *Repo) BulkUpsert(ctx context.Context, companies []domain.Company) []error {
	items := make([]db.JSONSetItem, 0, len(companies))
	errs := make([]error, len(companies))

	for i, c := range companies {
		data, err := marshalCompany(c)
		if err != nil {
			errs[i] = err
			continue
		}
		items = append(items, db.JSONSetItem{Key: docKey(c.ID), Path: "$", Data: data})
	}

	writeErrs := r.store.JSONSetMulti(ctx, items)

	// Map pipeline slots back onto input positions, skipping marshal failures.
	slot := 0
	for i := range companies {
		if errs[i] != nil {
			continue
		}
		if slot < len(writeErrs) && writeErrs[slot] != nil {
			errs[i] = fmt.Errorf("json.set company %s: %w", companies[i].ID, writeErrs[slot])
		}
		slot++
	}
	return errs
}

// SearchPage runs a paginated, sorted query against the company index and
// returns the page plus the index-wide hit total.
func (r *Repo) SearchPage(ctx context.Context, expr query.Expression, pg page.Page) ([]domain.Company, int, error) {
	result, err := r.store.Search(ctx, &db.Query{
		Index:   indexName(),
		Expr:    expr,
		Offset:  pg.Offset(),
		Limit:   pg.Size,
		SortBy:  pg.SortField,
		SortAsc: pg.Ascending,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("search companies: %w", err)
	}

	companies, err := unmarshalCompanies(result.Docs)
	if err != nil {
		return nil, 0, err
	}
	return companies, result.Total, nil
}

func docKey(id string) string {
	return fmt.Sprintf("%scompanies:%s", domain.KeyPrefix, id)
}

func indexName() string {
	return fmt.Sprintf("%scompanies:idx", domain.KeyPrefix)
}
