package orgsearch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/arkline/orgsearch/internal/db"
	dbRedis "github.com/arkline/orgsearch/internal/db/redis"
	"github.com/arkline/orgsearch/internal/domain"
	"github.com/arkline/orgsearch/internal/domain/search/filter"
	"github.com/arkline/orgsearch/internal/domain/search/page"
	companyrepo "github.com/arkline/orgsearch/internal/repository/company"
	personrepo "github.com/arkline/orgsearch/internal/repository/person"
	reportrepo "github.com/arkline/orgsearch/internal/repository/report"
	"github.com/arkline/orgsearch/internal/repository/schema"
	federationuc "github.com/arkline/orgsearch/internal/usecase/federation"
	healthuc "github.com/arkline/orgsearch/internal/usecase/health"
	nesteduc "github.com/arkline/orgsearch/internal/usecase/nested"
)

const defaultReadinessTimeout = 10 * time.Second

// Внутренние интерфейсы для подмены в тестах.
type federationUseCase interface {
	Search(ctx context.Context, cf filter.Company, rf filter.Report, pg page.Page) (federationuc.Result, error)
}

type nestedUseCase interface {
	Search(ctx context.Context, pf filter.Person, cf filter.Child) ([]domain.Person, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

type schemaEnsurer interface {
	Ensure(ctx context.Context, mode domain.Mode) error
}

type companyWriter interface {
	Upsert(ctx context.Context, c domain.Company) error
	BulkUpsert(ctx context.Context, companies []domain.Company) []error
}

type reportWriter interface {
	Upsert(ctx context.Context, r domain.Report) error
	BulkUpsert(ctx context.Context, reports []domain.Report) []error
}

type personWriter interface {
	Upsert(ctx context.Context, p domain.Person) error
}

// Client is the orgsearch SDK entry point.
type Client struct {
	store db.Store

	schema        schemaEnsurer
	federationSvc federationUseCase
	nestedSvc     nestedUseCase
	healthSvc     healthUseCase

	companies companyWriter
	reports   reportWriter
	people    personWriter
}

// New creates an orgsearch Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{logger: zap.NewNop()}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("orgsearch: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("orgsearch: create redis store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("orgsearch: database not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	companies := companyrepo.New(store)
	reports := reportrepo.New(store)
	if cfg.scanPageSize > 0 {
		reports = reports.WithScanPageSize(cfg.scanPageSize)
	}
	people := personrepo.New(store)
	if cfg.nestedResultCap > 0 {
		people = people.WithResultCap(cfg.nestedResultCap)
	}

	federationSvc := federationuc.New(companies, reports)
	nestedSvc := nesteduc.New(people)
	if cfg.stageTimeout > 0 {
		federationSvc = federationSvc.WithStageTimeout(cfg.stageTimeout)
		nestedSvc = nestedSvc.WithStageTimeout(cfg.stageTimeout)
	}

	return &Client{
		store:         store,
		schema:        schema.New(store, cfg.logger),
		federationSvc: federationSvc,
		nestedSvc:     nestedSvc,
		healthSvc:     healthuc.New(store),
		companies:     companies,
		reports:       reports,
		people:        people,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Health checks the health of all system components.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{Status: string(report.Status), Checks: checks}
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            // "ok" or "degraded"
	Checks map[string]string // component -> "ok"/"error"
}

// EnsureIndexes creates the search indexes of the given mode if they do not
// exist yet. Safe to call on every startup.
func (c *Client) EnsureIndexes(ctx context.Context, mode Mode) error {
	return c.schema.Ensure(ctx, domain.Mode(mode))
}

// UpsertCompany indexes a single company, overwriting any document with the
// same ID.
func (c *Client) UpsertCompany(ctx context.Context, company Company) error {
	return c.companies.Upsert(ctx, toDomainCompany(company))
}

// UpsertCompanies indexes companies in one pipeline. The returned slice is
// aligned with the input; a nil entry means that company was accepted.
func (c *Client) UpsertCompanies(ctx context.Context, companies []Company) []error {
	docs := make([]domain.Company, len(companies))
	for i, co := range companies {
		docs[i] = toDomainCompany(co)
	}
	return c.companies.BulkUpsert(ctx, docs)
}

// UpsertReport indexes a single report.
func (c *Client) UpsertReport(ctx context.Context, report Report) error {
	return c.reports.Upsert(ctx, toDomainReport(report))
}

// UpsertReports indexes reports in one pipeline, aligned like UpsertCompanies.
func (c *Client) UpsertReports(ctx context.Context, reports []Report) []error {
	docs := make([]domain.Report, len(reports))
	for i, r := range reports {
		docs[i] = toDomainReport(r)
	}
	return c.reports.BulkUpsert(ctx, docs)
}

// UpsertPerson indexes a person with its embedded children. People are keyed
// by normalized name, so re-upserting the same name overwrites.
func (c *Client) UpsertPerson(ctx context.Context, person Person) error {
	return c.people.Upsert(ctx, toDomainPerson(person))
}

// SearchCompanies runs the two-stage federated search: reports are matched
// first, and companies are then selected from the referenced ID set.
func (c *Client) SearchCompanies(ctx context.Context, req CompanySearchRequest) (CompanySearchResult, error) {
	pg, err := page.New(req.Page.Page, req.Page.Size, req.Page.SortField, req.Page.SortOrder)
	if err != nil {
		return CompanySearchResult{}, err
	}

	res, err := c.federationSvc.Search(ctx, toFilterCompany(req.Companies), toFilterReport(req.Reports), pg)
	if err != nil {
		return CompanySearchResult{}, err
	}
	return CompanySearchResult{
		Total:     res.Total,
		Companies: fromDomainCompanyReports(res.Companies),
	}, nil
}

// SearchPeople runs the nested-mode search. Every field of the child filter
// must be satisfied by one single embedded child of a returned person.
func (c *Client) SearchPeople(ctx context.Context, pf PersonFilter, cf ChildFilter) ([]Person, error) {
	people, err := c.nestedSvc.Search(ctx, toFilterPerson(pf), toFilterChild(cf))
	if err != nil {
		return nil, err
	}
	return fromDomainPeople(people), nil
}
