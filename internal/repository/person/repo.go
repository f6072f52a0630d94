// Package person persists and queries the single nested-mode index. People
// are keyed by normalized name; their embedded children have no standalone
// lifecycle.
package person

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arkline/orgsearch/internal/db"
	"github.com/arkline/orgsearch/internal/domain"
	"github.com/arkline/orgsearch/internal/domain/search/query"
)

// DefaultResultCap bounds the unpaginated nested search. The nested API has
// no paging, so the scan is capped instead.
const DefaultResultCap = 10000

// store is the consumer interface for person persistence (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	Search(ctx context.Context, q *db.Query) (*db.SearchResult, error)
}

// Repo implements person persistence over the search engine.
type Repo struct {
	store     store
	resultCap int
}

// New creates a person repository.
func New(s store) *Repo {
	return &Repo{store: s, resultCap: DefaultResultCap}
}

// WithResultCap configures the candidate search bound.
func (r *Repo) WithResultCap(n int) *Repo {
	if n > 0 {
		r.resultCap = n
	}
	return r
}

// Upsert writes a person document, children included; same-name writes
// overwrite the document as a whole.
func (r *Repo) Upsert(ctx context.Context, p domain.Person) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal person %s: %w", p.Name, err)
	}
	if err := r.store.JSONSet(ctx, docKey(p.Name), "$", data); err != nil {
		return fmt.Errorf("json.set person %s: %w", p.Name, err)
	}
	return nil
}

// SearchCandidates returns every document matching the expression, up to
// the result cap, unsorted and unpaginated. Nested clauses are rendered
// flattened by the engine layer, so the result may be a superset of the
// true same-element matches; the caller verifies.
func (r *Repo) SearchCandidates(ctx context.Context, expr query.Expression) ([]domain.Person, error) {
	result, err := r.store.Search(ctx, &db.Query{
		Index: indexName(),
		Expr:  expr,
		Limit: r.resultCap,
	})
	if err != nil {
		return nil, fmt.Errorf("search people: %w", err)
	}

	people := make([]domain.Person, 0, len(result.Docs))
	for _, doc := range result.Docs {
		var p domain.Person
		if err := json.Unmarshal(doc.JSON, &p); err != nil {
			return nil, fmt.Errorf("unmarshal person %s: %w", doc.Key, err)
		}
		people = append(people, p)
	}
	return people, nil
}

func docKey(name string) string {
	return fmt.Sprintf("%speople:%s", domain.KeyPrefix, strings.ToLower(strings.ReplaceAll(name, " ", "-")))
}

func indexName() string {
	return fmt.Sprintf("%speople:idx", domain.KeyPrefix)
}
