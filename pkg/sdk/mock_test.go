package orgsearch

import (
	"context"

	"github.com/arkline/orgsearch/internal/domain"
	"github.com/arkline/orgsearch/internal/domain/search/filter"
	"github.com/arkline/orgsearch/internal/domain/search/page"
	federationuc "github.com/arkline/orgsearch/internal/usecase/federation"
	healthuc "github.com/arkline/orgsearch/internal/usecase/health"
)

// --- federationUseCase mock ---

type mockFederationUC struct {
	searchFn func(ctx context.Context, cf filter.Company, rf filter.Report, pg page.Page) (federationuc.Result, error)
}

func (m *mockFederationUC) Search(
	ctx context.Context, cf filter.Company, rf filter.Report, pg page.Page,
) (federationuc.Result, error) {
	return m.searchFn(ctx, cf, rf, pg)
}

// --- nestedUseCase mock ---

type mockNestedUC struct {
	searchFn func(ctx context.Context, pf filter.Person, cf filter.Child) ([]domain.Person, error)
}

func (m *mockNestedUC) Search(ctx context.Context, pf filter.Person, cf filter.Child) ([]domain.Person, error) {
	return m.searchFn(ctx, pf, cf)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	checkFn func(ctx context.Context) healthuc.Report
}

func (m *mockHealthUC) Check(ctx context.Context) healthuc.Report {
	return m.checkFn(ctx)
}

// --- schemaEnsurer mock ---

type mockSchema struct {
	ensureFn func(ctx context.Context, mode domain.Mode) error
}

func (m *mockSchema) Ensure(ctx context.Context, mode domain.Mode) error {
	if m.ensureFn != nil {
		return m.ensureFn(ctx, mode)
	}
	return nil
}

// --- writer mocks ---

type mockCompanyWriter struct {
	upsertFn     func(ctx context.Context, c domain.Company) error
	bulkUpsertFn func(ctx context.Context, companies []domain.Company) []error
}

func (m *mockCompanyWriter) Upsert(ctx context.Context, c domain.Company) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, c)
	}
	return nil
}

func (m *mockCompanyWriter) BulkUpsert(ctx context.Context, companies []domain.Company) []error {
	if m.bulkUpsertFn != nil {
		return m.bulkUpsertFn(ctx, companies)
	}
	return make([]error, len(companies))
}

type mockPersonWriter struct {
	upsertFn func(ctx context.Context, p domain.Person) error
}

func (m *mockPersonWriter) Upsert(ctx context.Context, p domain.Person) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, p)
	}
	return nil
}
