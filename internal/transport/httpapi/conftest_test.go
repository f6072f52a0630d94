package httpapi

import (
	"context"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/arkline/orgsearch/internal/domain"
	"github.com/arkline/orgsearch/internal/domain/search/page"
	"github.com/arkline/orgsearch/internal/domain/search/query"
	federationuc "github.com/arkline/orgsearch/internal/usecase/federation"
	healthuc "github.com/arkline/orgsearch/internal/usecase/health"
	nesteduc "github.com/arkline/orgsearch/internal/usecase/nested"
	seeduc "github.com/arkline/orgsearch/internal/usecase/seed"
)

// Repository-level mocks; handlers are tested through the real services.

type mockReports struct {
	searchAllFn func(ctx context.Context, expr query.Expression) ([]domain.Report, error)
}

func (m *mockReports) SearchAll(ctx context.Context, expr query.Expression) ([]domain.Report, error) {
	if m.searchAllFn != nil {
		return m.searchAllFn(ctx, expr)
	}
	return nil, nil
}

func (m *mockReports) BulkUpsert(ctx context.Context, reports []domain.Report) []error {
	return make([]error, len(reports))
}

type mockCompanies struct {
	searchPageFn func(ctx context.Context, expr query.Expression, pg page.Page) ([]domain.Company, int, error)
}

func (m *mockCompanies) SearchPage(ctx context.Context, expr query.Expression, pg page.Page) ([]domain.Company, int, error) {
	if m.searchPageFn != nil {
		return m.searchPageFn(ctx, expr, pg)
	}
	return nil, 0, nil
}

func (m *mockCompanies) BulkUpsert(ctx context.Context, companies []domain.Company) []error {
	return make([]error, len(companies))
}

type mockPeople struct {
	searchCandidatesFn func(ctx context.Context, expr query.Expression) ([]domain.Person, error)
	upsertFn           func(ctx context.Context, p domain.Person) error
}

func (m *mockPeople) SearchCandidates(ctx context.Context, expr query.Expression) ([]domain.Person, error) {
	if m.searchCandidatesFn != nil {
		return m.searchCandidatesFn(ctx, expr)
	}
	return nil, nil
}

func (m *mockPeople) Upsert(ctx context.Context, p domain.Person) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, p)
	}
	return nil
}

type mockPinger struct {
	pingFn func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	if m.pingFn != nil {
		return m.pingFn(ctx)
	}
	return nil
}

type testFixture struct {
	router    chi.Router
	companies *mockCompanies
	reports   *mockReports
	people    *mockPeople
	pinger    *mockPinger
}

func newFederationFixture(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{
		companies: &mockCompanies{},
		reports:   &mockReports{},
		people:    &mockPeople{},
		pinger:    &mockPinger{},
	}

	logger := zap.NewNop()
	srv := NewServer(
		domain.ModeFederation,
		federationuc.New(f.companies, f.reports),
		nil,
		seeduc.New(f.companies, f.reports, nil, logger),
		healthuc.New(f.pinger),
		logger,
	)

	f.router = chi.NewRouter()
	srv.Mount(f.router)
	return f
}

func newNestedFixture(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{
		people: &mockPeople{},
		pinger: &mockPinger{},
	}

	logger := zap.NewNop()
	srv := NewServer(
		domain.ModeNested,
		nil,
		nesteduc.New(f.people),
		seeduc.New(nil, nil, f.people, logger),
		healthuc.New(f.pinger),
		logger,
	)

	f.router = chi.NewRouter()
	srv.Mount(f.router)
	return f
}
