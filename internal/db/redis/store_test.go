package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/rueidis"
	"github.com/redis/rueidis/mock"
	"go.uber.org/mock/gomock"

	"github.com/arkline/orgsearch/internal/db"
	"github.com/arkline/orgsearch/internal/domain/search/query"
)

// --- client.go tests ---

func TestNewStore_NoAddrs(t *testing.T) {
	if _, err := NewStore(Config{}); err == nil {
		t.Fatal("expected error for missing addrs")
	}
}

func TestPing_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("PING")).
		Return(mock.Result(mock.RedisString("PONG")))

	s := NewStoreFromClient(c)
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPing_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("PING")).
		Return(mock.ErrorResult(context.DeadlineExceeded))

	s := NewStoreFromClient(c)
	err := s.Ping(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	var dbErr *db.Error
	if !errors.As(err, &dbErr) || dbErr.Op != db.OpPing {
		t.Errorf("expected db.Error with OpPing, got %v", err)
	}
}

func TestContainsIgnoreCase(t *testing.T) {
	tests := []struct {
		s, sub string
		want   bool
	}{
		{"Index already exists", "index already exists", true},
		{"Unknown Index name", "unknown index name", true},
		{"unknown command", "unknown index name", false},
		{"short", "much longer needle", false},
	}
	for _, tt := range tests {
		if got := containsIgnoreCase(tt.s, tt.sub); got != tt.want {
			t.Errorf("containsIgnoreCase(%q, %q) = %v, want %v", tt.s, tt.sub, got, tt.want)
		}
	}
}

// --- json.go tests ---

func TestJSONSet_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("JSON.SET", "orgsearch:companies:c1", "$", `{"id":"c1"}`)).
		Return(mock.Result(mock.RedisString("OK")))

	s := NewStoreFromClient(c)
	if err := s.JSONSet(context.Background(), "orgsearch:companies:c1", "$", []byte(`{"id":"c1"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestJSONSet_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "JSON.SET"
		})).
		Return(mock.ErrorResult(context.DeadlineExceeded))

	s := NewStoreFromClient(c)
	err := s.JSONSet(context.Background(), "k", "$", []byte(`{}`))

	var dbErr *db.Error
	if !errors.As(err, &dbErr) || dbErr.Op != db.OpJSONSet {
		t.Errorf("expected db.Error with OpJSONSet, got %v", err)
	}
}

func TestJSONSetMulti_Aligned(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		DoMulti(gomock.Any(), gomock.Any()).
		Return([]rueidis.RedisResult{
			mock.Result(mock.RedisString("OK")),
			mock.ErrorResult(context.DeadlineExceeded),
			mock.Result(mock.RedisString("OK")),
		})

	s := NewStoreFromClient(c)
	errs := s.JSONSetMulti(context.Background(), []db.JSONSetItem{
		{Key: "k1", Path: "$", Data: []byte(`{}`)},
		{Key: "k2", Path: "$", Data: []byte(`{}`)},
		{Key: "k3", Path: "$", Data: []byte(`{}`)},
	})

	if len(errs) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(errs))
	}
	if errs[0] != nil || errs[2] != nil {
		t.Errorf("expected nil for accepted writes: %v", errs)
	}
	if errs[1] == nil {
		t.Error("expected error in slot 1")
	}
}

func TestJSONSetMulti_Empty(t *testing.T) {
	s := NewStoreFromClient(nil) // client not called
	if errs := s.JSONSetMulti(context.Background(), nil); errs != nil {
		t.Errorf("expected nil, got %v", errs)
	}
}

// --- index.go tests ---

func TestCreateIndex_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "FT.CREATE" && cmd[1] == "orgsearch:reports:idx"
		})).
		Return(mock.Result(mock.RedisString("OK")))

	s := NewStoreFromClient(c)
	idx := &db.IndexDefinition{
		Name:        "orgsearch:reports:idx",
		StorageType: db.StorageJSON,
		Prefixes:    []string{"orgsearch:reports:"},
		Fields: []db.IndexField{
			{Name: "$.company_id", Alias: "company_id", Type: db.IndexFieldTag},
		},
	}
	if err := s.CreateIndex(context.Background(), idx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateIndex_AlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "FT.CREATE"
		})).
		Return(mock.Result(mock.RedisError("Index already exists")))

	s := NewStoreFromClient(c)
	idx := &db.IndexDefinition{
		Name:   "idx",
		Fields: []db.IndexField{{Name: "f", Type: db.IndexFieldTag}},
	}
	if err := s.CreateIndex(context.Background(), idx); !errors.Is(err, db.ErrIndexExists) {
		t.Errorf("expected ErrIndexExists, got %v", err)
	}
}

func TestIndexExists_True(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("FT.INFO", "orgsearch:people:idx")).
		Return(mock.Result(mock.RedisArray(
			mock.RedisString("index_name"), mock.RedisString("orgsearch:people:idx"),
		)))

	s := NewStoreFromClient(c)
	exists, err := s.IndexExists(context.Background(), "orgsearch:people:idx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected true")
	}
}

func TestIndexExists_False(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("FT.INFO", "orgsearch:people:idx")).
		Return(mock.Result(mock.RedisError("Unknown index name")))

	s := NewStoreFromClient(c)
	exists, err := s.IndexExists(context.Background(), "orgsearch:people:idx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected false")
	}
}

func TestBuildCreateArgs(t *testing.T) {
	def := &db.IndexDefinition{
		Name:        "orgsearch:people:idx",
		StorageType: db.StorageJSON,
		Prefixes:    []string{"orgsearch:people:"},
		Fields: []db.IndexField{
			{Name: "$.name", Alias: "name", Type: db.IndexFieldText},
			{Name: "$.age", Alias: "age", Type: db.IndexFieldNumeric},
			{Name: "$.children[*].grade", Alias: "child_grade", Type: db.IndexFieldNumeric},
			{Name: "$.id", Alias: "id", Type: db.IndexFieldTag, Sortable: true},
		},
	}

	args, err := buildCreateArgs(def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"orgsearch:people:idx", "ON", "JSON",
		"PREFIX", "1", "orgsearch:people:",
		"SCHEMA",
		"$.name", "AS", "name", "TEXT",
		"$.age", "AS", "age", "NUMERIC",
		"$.children[*].grade", "AS", "child_grade", "NUMERIC",
		"$.id", "AS", "id", "TAG", "SORTABLE",
	}
	if len(args) != len(want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}

func TestBuildCreateArgs_Validation(t *testing.T) {
	_, err := buildCreateArgs(&db.IndexDefinition{Fields: []db.IndexField{{Name: "f"}}})
	if err == nil {
		t.Error("expected error for empty name")
	}

	_, err = buildCreateArgs(&db.IndexDefinition{Name: "idx"})
	if err == nil {
		t.Error("expected error for empty fields")
	}

	_, err = buildCreateArgs(&db.IndexDefinition{
		Name:   "idx",
		Fields: []db.IndexField{{Name: "f", Type: db.IndexFieldType(99)}},
	})
	if err == nil {
		t.Error("expected error for unknown field type")
	}
}

// --- search.go tests ---

func TestSearch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			if cmd[0] != "FT.SEARCH" || cmd[1] != "orgsearch:companies:idx" {
				return false
			}
			// SORTBY precedes LIMIT/RETURN/DIALECT
			for i, arg := range cmd {
				if arg == "SORTBY" {
					return cmd[i+1] == "name_kw" && cmd[i+2] == "ASC"
				}
			}
			return false
		})).
		Return(mock.Result(mock.RedisArray(
			mock.RedisInt64(2),
			mock.RedisString("orgsearch:companies:c1"),
			mock.RedisArray(
				mock.RedisString("$"),
				mock.RedisString(`{"id":"c1","name":"Acme"}`),
			),
			mock.RedisString("orgsearch:companies:c2"),
			mock.RedisArray(
				mock.RedisString("$"),
				mock.RedisString(`{"id":"c2","name":"Borealis"}`),
			),
		)))

	s := NewStoreFromClient(c)
	result, err := s.Search(context.Background(), &db.Query{
		Index:   "orgsearch:companies:idx",
		Expr:    query.New(query.AnyOf("id", []string{"c1", "c2"})),
		Offset:  0,
		Limit:   10,
		SortBy:  "name_kw",
		SortAsc: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Total != 2 {
		t.Errorf("total = %d, want 2", result.Total)
	}
	if len(result.Docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(result.Docs))
	}
	if result.Docs[0].Key != "orgsearch:companies:c1" {
		t.Errorf("key = %q", result.Docs[0].Key)
	}
	if string(result.Docs[1].JSON) != `{"id":"c2","name":"Borealis"}` {
		t.Errorf("json = %s", result.Docs[1].JSON)
	}
}

func TestSearch_NoSort(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			for _, arg := range cmd {
				if arg == "SORTBY" {
					return false
				}
			}
			return cmd[0] == "FT.SEARCH"
		})).
		Return(mock.Result(mock.RedisArray(mock.RedisInt64(0))))

	s := NewStoreFromClient(c)
	result, err := s.Search(context.Background(), &db.Query{
		Index: "idx",
		Expr:  query.New(),
		Limit: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 0 || len(result.Docs) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestSearch_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "FT.SEARCH"
		})).
		Return(mock.ErrorResult(context.DeadlineExceeded))

	s := NewStoreFromClient(c)
	_, err := s.Search(context.Background(), &db.Query{Index: "idx", Limit: 10})

	var dbErr *db.Error
	if !errors.As(err, &dbErr) || dbErr.Op != db.OpSearch {
		t.Errorf("expected db.Error with OpSearch, got %v", err)
	}
}

func TestSearch_Validation(t *testing.T) {
	s := &Store{}
	ctx := context.Background()

	if _, err := s.Search(ctx, &db.Query{Limit: 10}); err == nil {
		t.Error("expected error for empty index name")
	}
	if _, err := s.Search(ctx, &db.Query{Index: "idx", Offset: -1}); err == nil {
		t.Error("expected error for negative offset")
	}
	if _, err := s.Search(ctx, &db.Query{Index: "idx", Limit: -1}); err == nil {
		t.Error("expected error for negative limit")
	}
}
