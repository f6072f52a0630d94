// Package report persists and queries the child index.
package report

import (
	"context"
	"fmt"

	"github.com/arkline/orgsearch/internal/db"
	"github.com/arkline/orgsearch/internal/domain"
	"github.com/arkline/orgsearch/internal/domain/search/query"
)

// DefaultScanPageSize is the internal page size of the exhaustive scan.
const DefaultScanPageSize = 500

// store is the consumer interface for report persistence (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONSetMulti(ctx context.Context, items []db.JSONSetItem) []error
	Search(ctx context.Context, q *db.Query) (*db.SearchResult, error)
}

// Repo implements report persistence over the search engine.
type Repo struct {
	store        store
	scanPageSize int
}

// New creates a report repository.
func New(s store) *Repo {
	return &Repo{store: s, scanPageSize: DefaultScanPageSize}
}

// WithScanPageSize configures the internal page size of SearchAll.
func (r *Repo) WithScanPageSize(size int) *Repo {
	if size > 0 {
		r.scanPageSize = size
	}
	return r
}

// Upsert writes a single report; same-ID writes overwrite.
func (r *Repo) Upsert(ctx context.Context, rep domain.Report) error {
	data, err := marshalReport(rep)
	if err != nil {
		return err
	}
	if err := r.store.JSONSet(ctx, docKey(rep.ID), "$", data); err != nil {
		return fmt.Errorf("json.set report %s: %w", rep.ID, err)
	}
	return nil
}

// BulkUpsert pipelines a batch of reports. Best-effort: the returned slice
// is index-aligned with the input, nil meaning that write succeeded.
func (r *Repo) BulkUpsert(ctx context.Context, reports []domain.Report) []error {
	items := make([]db.JSONSetItem, 0, len(reports))
	errs := make([]error, len(reports))

	for i, rep := range reports {
		data, err := marshalReport(rep)
		if err != nil {
			errs[i] = err
			continue
		}
		items = append(items, db.JSONSetItem{Key: docKey(rep.ID), Path: "$", Data: data})
	}

	writeErrs := r.store.JSONSetMulti(ctx, items)

	slot := 0
	for i := range reports {
		if errs[i] != nil {
			continue
		}
		if slot < len(writeErrs) && writeErrs[slot] != nil {
			errs[i] = fmt.Errorf("json.set report %s: %w", reports[i].ID, writeErrs[slot])
		}
		slot++
	}
	return errs
}

// SearchAll fetches every report matching the expression by iterating
// fixed-size pages until the reported total is exhausted. An internal paged
// scan rather than one large-cap request, so child matches are never
// silently truncated at scale.
func (r *Repo) SearchAll(ctx context.Context, expr query.Expression) ([]domain.Report, error) {
	var reports []domain.Report

	for offset := 0; ; offset += r.scanPageSize {
		result, err := r.store.Search(ctx, &db.Query{
			Index:  indexName(),
			Expr:   expr,
			Offset: offset,
			Limit:  r.scanPageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("scan reports at offset %d: %w", offset, err)
		}

		batch, err := unmarshalReports(result.Docs)
		if err != nil {
			return nil, err
		}
		reports = append(reports, batch...)

		if len(result.Docs) == 0 || len(reports) >= result.Total {
			break
		}
	}

	return reports, nil
}

func docKey(id string) string {
	return fmt.Sprintf("%sreports:%s", domain.KeyPrefix, id)
}

func indexName() string {
	return fmt.Sprintf("%sreports:idx", domain.KeyPrefix)
}
