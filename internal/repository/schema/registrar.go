// Package schema ensures the required index shapes exist before any query
// runs. Registration is idempotent: existing indexes are left untouched.
package schema

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/arkline/orgsearch/internal/db"
	"github.com/arkline/orgsearch/internal/domain"
)

// store is the consumer interface for schema registration (ISP).
type store interface {
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Registrar creates missing indexes at startup. Any failure must abort
// startup: a missing schema cannot degrade silently.
type Registrar struct {
	store  store
	logger *zap.Logger
}

// New creates a schema registrar.
func New(s store, logger *zap.Logger) *Registrar {
	return &Registrar{store: s, logger: logger}
}

// Ensure checks and creates the index shapes the given mode requires.
func (r *Registrar) Ensure(ctx context.Context, mode domain.Mode) error {
	var defs []*db.IndexDefinition
	switch mode {
	case domain.ModeFederation:
		defs = []*db.IndexDefinition{companiesIndex(), reportsIndex()}
	case domain.ModeNested:
		defs = []*db.IndexDefinition{peopleIndex()}
	default:
		return fmt.Errorf("%w: unknown mode %q", domain.ErrSchema, mode)
	}

	for _, def := range defs {
		if err := r.ensure(ctx, def); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registrar) ensure(ctx context.Context, def *db.IndexDefinition) error {
	exists, err := r.store.IndexExists(ctx, def.Name)
	if err != nil {
		return fmt.Errorf("%w: check index %s: %w", domain.ErrSchema, def.Name, err)
	}
	if exists {
		return nil
	}

	if err := r.store.CreateIndex(ctx, def); err != nil {
		// Another instance won the create race; the shape is there.
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("%w: create index %s: %w", domain.ErrSchema, def.Name, err)
	}

	r.logger.Info("created search index", zap.String("index", def.Name))
	return nil
}

// Exact-match fields are un-analyzed TAG attributes; free-text fields are
// analyzed TEXT with an un-analyzed TAG sibling where exact matching or
// sorting is needed.

func companiesIndex() *db.IndexDefinition {
	return db.NewIndex(indexName("companies")).
		Prefix(keyPrefix("companies")).
		TagSortable("$.id", domain.FieldID).
		Text("$.name", domain.FieldName).
		TagSortable("$.name", domain.FieldNameKeyword).
		MustBuild()
}

func reportsIndex() *db.IndexDefinition {
	return db.NewIndex(indexName("reports")).
		Prefix(keyPrefix("reports")).
		Tag("$.id", domain.FieldID).
		Text("$.name", domain.FieldName).
		Tag("$.company_id", domain.FieldCompanyID).
		Tag("$.tags[*]", domain.FieldTags).
		Tag("$.status", domain.FieldStatus).
		MustBuild()
}

func peopleIndex() *db.IndexDefinition {
	return db.NewIndex(indexName("people")).
		Prefix(keyPrefix("people")).
		Text("$.name", domain.FieldName).
		Numeric("$.age", domain.FieldAge).
		Text("$.children[*].name", db.NestedAliasPrefix+domain.FieldChildName).
		Numeric("$.children[*].grade", db.NestedAliasPrefix+domain.FieldChildGrade).
		Text("$.children[*].hobbies", db.NestedAliasPrefix+domain.FieldChildHobbies).
		MustBuild()
}

func indexName(entity string) string {
	return fmt.Sprintf("%s%s:idx", domain.KeyPrefix, entity)
}

func keyPrefix(entity string) string {
	return fmt.Sprintf("%s%s:", domain.KeyPrefix, entity)
}
