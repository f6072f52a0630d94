package redis

import (
	"context"

	"github.com/redis/rueidis"

	"github.com/arkline/orgsearch/internal/db"
)

// JSONSet stores a JSON document at the given key and path. RedisJSON
// indexes the document synchronously, so a write is immediately searchable
// (refresh-on-write semantics).
func (s *Store) JSONSet(ctx context.Context, key, path string, data []byte) error {
	cmd := s.b().Arbitrary("JSON.SET").Keys(key).Args(path, string(data)).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpJSONSet, Err: err}
	}
	return nil
}

// JSONSetMulti pipelines JSON.SET for a batch of documents. The returned
// slice is index-aligned with items; a nil slot means that write succeeded.
func (s *Store) JSONSetMulti(ctx context.Context, items []db.JSONSetItem) []error {
	if len(items) == 0 {
		return nil
	}

	cmds := make([]rueidis.Completed, len(items))
	for i, item := range items {
		cmds[i] = s.b().Arbitrary("JSON.SET").Keys(item.Key).Args(item.Path, string(item.Data)).Build()
	}

	errs := make([]error, len(items))
	for i, result := range s.client.DoMulti(ctx, cmds...) {
		if err := result.Error(); err != nil {
			errs[i] = &db.Error{Op: db.OpJSONSet, Err: err}
		}
	}
	return errs
}
