package federation

import (
	"context"

	"github.com/arkline/orgsearch/internal/domain"
	"github.com/arkline/orgsearch/internal/domain/search/page"
	"github.com/arkline/orgsearch/internal/domain/search/query"
)

// ReportSearcher scans the child index exhaustively.
type ReportSearcher interface {
	SearchAll(ctx context.Context, expr query.Expression) ([]domain.Report, error)
}

// CompanySearcher runs the paginated, sorted parent query and returns the
// page plus the index-wide hit total.
type CompanySearcher interface {
	SearchPage(ctx context.Context, expr query.Expression, pg page.Page) ([]domain.Company, int, error)
}
