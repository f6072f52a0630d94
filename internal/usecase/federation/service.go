// Package federation orchestrates the two-stage parent/child search: the
// child query runs first, the distinct parent-key set is derived from its
// hits, and the parent query is constrained to that set. There is no native
// join in the engine; the intersection happens in memory.
package federation

import (
	"context"
	"fmt"
	"time"

	"github.com/arkline/orgsearch/internal/domain"
	"github.com/arkline/orgsearch/internal/domain/search/filter"
	"github.com/arkline/orgsearch/internal/domain/search/page"
	"github.com/arkline/orgsearch/internal/domain/search/query"
)

// Service is the query federator for the two-index mode.
type Service struct {
	companies    CompanySearcher
	reports      ReportSearcher
	stageTimeout time.Duration
}

// New creates a federation service.
func New(companies CompanySearcher, reports ReportSearcher) *Service {
	return &Service{companies: companies, reports: reports}
}

// WithStageTimeout bounds each of the two engine calls separately so a slow
// backend cannot block a request indefinitely. Zero disables the bound.
func (s *Service) WithStageTimeout(d time.Duration) *Service {
	s.stageTimeout = d
	return s
}

func (s *Service) stageContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.stageTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.stageTimeout)
}

// Result is the assembled hierarchical payload. Total is the parent-stage
// hit count under the joint filter+key-set constraint, not the raw child
// match count.
type Result struct {
	Total     int
	Companies []domain.CompanyReports
}

// Search runs the federated lookup. The two engine calls are strictly
// sequential: the parent query depends on the child query's output. An
// engine failure at either stage fails the whole operation; no partial
// results are returned.
func (s *Service) Search(
	ctx context.Context, cf filter.Company, rf filter.Report, pg page.Page,
) (Result, error) {
	childCtx, cancelChild := s.stageContext(ctx)
	reports, err := s.reports.SearchAll(childCtx, filter.CompileReport(rf))
	cancelChild()
	if err != nil {
		return Result{}, fmt.Errorf("%w: search reports: %w", domain.ErrSearchBackend, err)
	}

	companyIDs := distinctCompanyIDs(reports)
	if len(companyIDs) == 0 {
		// No qualifying children: querying parents would be wasted work and
		// could never contribute a result.
		return Result{Total: 0, Companies: []domain.CompanyReports{}}, nil
	}

	expr := filter.CompileCompany(cf).With(query.AnyOf(domain.FieldID, companyIDs))
	parentCtx, cancelParent := s.stageContext(ctx)
	companies, total, err := s.companies.SearchPage(parentCtx, expr, pg)
	cancelParent()
	if err != nil {
		return Result{}, fmt.Errorf("%w: search companies: %w", domain.ErrSearchBackend, err)
	}

	return Result{Total: total, Companies: attachReports(companies, reports)}, nil
}

// distinctCompanyIDs extracts the parent-key set referenced by matched
// reports, preserving first-seen order.
func distinctCompanyIDs(reports []domain.Report) []string {
	seen := make(map[string]bool, len(reports))
	ids := make([]string, 0, len(reports))
	for _, rep := range reports {
		if rep.CompanyID == "" || seen[rep.CompanyID] {
			continue
		}
		seen[rep.CompanyID] = true
		ids = append(ids, rep.CompanyID)
	}
	return ids
}
