// Package db defines the document search engine facade consumed by the
// repositories. Implementations live in subpackages; consumers depend on the
// narrow sub-interfaces they need (ISP).
package db

import (
	"context"
	"time"

	"github.com/arkline/orgsearch/internal/domain/search/query"
)

// Store is the main engine facade combining all sub-interfaces.
type Store interface {
	Pinger
	JSONStore
	IndexManager
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks engine connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// JSONSetItem holds a single key+path+data triple for pipelined JSON.SET.
type JSONSetItem struct {
	Key  string
	Path string
	Data []byte
}

// JSONStore provides JSON document write operations. JSONSetMulti is
// best-effort: it returns one error slot per item, index-aligned, so callers
// can log partial failures without aborting the batch.
type JSONStore interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONSetMulti(ctx context.Context, items []JSONSetItem) []error
}

// IndexManager provides FT index lifecycle operations.
type IndexManager interface {
	CreateIndex(ctx context.Context, def *IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Query is a paginated, optionally sorted search over one index. An empty
// expression matches every document. SortBy names an index attribute; empty
// means engine default ordering.
type Query struct {
	Index   string
	Expr    query.Expression
	Offset  int
	Limit   int
	SortBy  string
	SortAsc bool
}

// SearchResult is the output of a search: the index-wide hit total and the
// requested page of documents.
type SearchResult struct {
	Total int
	Docs  []Document
}

// Document is a single hit with its full JSON source.
type Document struct {
	Key  string
	JSON []byte
}

// Searcher executes structured queries over FT indexes.
type Searcher interface {
	Search(ctx context.Context, q *Query) (*SearchResult, error)
}
