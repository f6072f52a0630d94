package nested

import (
	"context"

	"github.com/arkline/orgsearch/internal/domain"
	"github.com/arkline/orgsearch/internal/domain/search/query"
)

// PersonSearcher returns the candidate documents matching an expression.
// Candidates may over-match on nested clauses; the service verifies.
type PersonSearcher interface {
	SearchCandidates(ctx context.Context, expr query.Expression) ([]domain.Person, error)
}
