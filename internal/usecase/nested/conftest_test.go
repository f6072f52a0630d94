package nested

import (
	"context"
	"testing"

	"github.com/arkline/orgsearch/internal/domain"
	"github.com/arkline/orgsearch/internal/domain/search/query"
)

// mockPeople implements PersonSearcher for tests.
type mockPeople struct {
	searchCandidatesFn func(ctx context.Context, expr query.Expression) ([]domain.Person, error)
}

func (m *mockPeople) SearchCandidates(ctx context.Context, expr query.Expression) ([]domain.Person, error) {
	if m.searchCandidatesFn != nil {
		return m.searchCandidatesFn(ctx, expr)
	}
	return nil, nil
}

func newTestService(t *testing.T) (*Service, *mockPeople) {
	t.Helper()
	people := &mockPeople{}
	return New(people), people
}
