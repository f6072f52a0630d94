// Package nested serves the single-index mode: one document shape with an
// embedded children array, queried with same-element conjunction semantics.
// Results are returned raw, unpaginated and unsorted; this asymmetry with
// the federation mode is intentional.
package nested

import (
	"context"
	"fmt"
	"time"

	"github.com/arkline/orgsearch/internal/domain"
	"github.com/arkline/orgsearch/internal/domain/search/filter"
)

// Service runs nested-document searches.
type Service struct {
	people       PersonSearcher
	stageTimeout time.Duration
}

// New creates a nested search service.
func New(people PersonSearcher) *Service {
	return &Service{people: people}
}

// WithStageTimeout bounds the engine call. Zero disables the bound.
func (s *Service) WithStageTimeout(d time.Duration) *Service {
	s.stageTimeout = d
	return s
}

// Search compiles the combined parent+child filter and returns matched
// documents. The engine flattens embedded arrays, so its hits are a
// candidate superset; each candidate is re-verified here so that one single
// child element must satisfy every child condition simultaneously.
func (s *Service) Search(ctx context.Context, pf filter.Person, cf filter.Child) ([]domain.Person, error) {
	if s.stageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.stageTimeout)
		defer cancel()
	}

	candidates, err := s.people.SearchCandidates(ctx, filter.CompilePerson(pf, cf))
	if err != nil {
		return nil, fmt.Errorf("%w: search people: %w", domain.ErrSearchBackend, err)
	}

	if cf.IsEmpty() {
		return candidates, nil
	}

	matched := make([]domain.Person, 0, len(candidates))
	for _, p := range candidates {
		if anyChildMatches(p.Children, cf) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func anyChildMatches(children []domain.Child, cf filter.Child) bool {
	for _, c := range children {
		if cf.Matches(c) {
			return true
		}
	}
	return false
}
