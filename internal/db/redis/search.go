package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/rueidis"

	"github.com/arkline/orgsearch/internal/db"
)

// Search executes a structured query via FT.SEARCH, returning the full JSON
// source of each hit plus the index-wide total.
func (s *Store) Search(ctx context.Context, q *db.Query) (*db.SearchResult, error) {
	if q.Index == "" {
		return nil, fmt.Errorf("index name is required")
	}
	if q.Limit < 0 || q.Offset < 0 {
		return nil, fmt.Errorf("offset and limit must be non-negative")
	}

	args := []string{q.Index, Render(q.Expr)}

	if q.SortBy != "" {
		order := "DESC"
		if q.SortAsc {
			order = "ASC"
		}
		args = append(args, "SORTBY", q.SortBy, order)
	}

	args = append(args,
		"LIMIT", strconv.Itoa(q.Offset), strconv.Itoa(q.Limit),
		"RETURN", "1", "$",
		"DIALECT", "2",
	)

	cmd := s.b().Arbitrary("FT.SEARCH").Args(args...).Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: err}
	}

	return parseSearchResult(raw)
}

// parseSearchResult decodes the RESP2 FT.SEARCH reply:
// [total, key1, fields1, key2, fields2, ...] where fields is a flat
// name/value pair list containing the "$" document source.
func parseSearchResult(raw []rueidis.RedisMessage) (*db.SearchResult, error) {
	if len(raw) == 0 {
		return &db.SearchResult{}, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}
	if total == 0 {
		return &db.SearchResult{}, nil
	}

	docs := make([]db.Document, 0, (len(raw)-1)/2)
	for i := 1; i+1 < len(raw); i += 2 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}

		fields, err := raw[i+1].ToArray()
		if err != nil {
			continue
		}

		docs = append(docs, db.Document{
			Key:  key,
			JSON: []byte(fieldValue(fields, "$")),
		})
	}

	return &db.SearchResult{Total: int(total), Docs: docs}, nil
}

func fieldValue(fields []rueidis.RedisMessage, name string) string {
	for j := 0; j+1 < len(fields); j += 2 {
		n, err := fields[j].ToString()
		if err != nil || n != name {
			continue
		}
		v, err := fields[j+1].ToString()
		if err != nil {
			return ""
		}
		return v
	}
	return ""
}
