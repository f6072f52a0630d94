package federation

import (
	"context"
	"testing"

	"github.com/arkline/orgsearch/internal/domain"
	"github.com/arkline/orgsearch/internal/domain/search/page"
	"github.com/arkline/orgsearch/internal/domain/search/query"
)

// mockReports implements ReportSearcher for tests.
type mockReports struct {
	searchAllFn func(ctx context.Context, expr query.Expression) ([]domain.Report, error)
}

func (m *mockReports) SearchAll(ctx context.Context, expr query.Expression) ([]domain.Report, error) {
	if m.searchAllFn != nil {
		return m.searchAllFn(ctx, expr)
	}
	return nil, nil
}

// mockCompanies implements CompanySearcher for tests.
type mockCompanies struct {
	searchPageFn func(ctx context.Context, expr query.Expression, pg page.Page) ([]domain.Company, int, error)
}

func (m *mockCompanies) SearchPage(ctx context.Context, expr query.Expression, pg page.Page) ([]domain.Company, int, error) {
	if m.searchPageFn != nil {
		return m.searchPageFn(ctx, expr, pg)
	}
	return nil, 0, nil
}

func newTestService(t *testing.T) (*Service, *mockCompanies, *mockReports) {
	t.Helper()
	companies := &mockCompanies{}
	reports := &mockReports{}
	return New(companies, reports), companies, reports
}

func defaultPage(t *testing.T) page.Page {
	t.Helper()
	pg, err := page.New(0, 0, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return pg
}
