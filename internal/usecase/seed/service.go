// Package seed inserts the fixed sample data set. Bulk writes are
// best-effort: rejected documents are logged and the operation still
// reports what was accepted.
package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/arkline/orgsearch/internal/domain"
)

// Service seeds sample documents for both serving modes.
type Service struct {
	companies CompanyWriter
	reports   ReportWriter
	people    PersonWriter
	logger    *zap.Logger
}

// New creates a seed service. Writers not needed by the active mode may be nil.
func New(companies CompanyWriter, reports ReportWriter, people PersonWriter, logger *zap.Logger) *Service {
	return &Service{companies: companies, reports: reports, people: people, logger: logger}
}

// FederationResult echoes the records accepted by a federation-mode seeding.
type FederationResult struct {
	Companies []domain.Company
	Reports   []domain.Report
	Failed    int
}

// SeedFederation writes 5 companies with 3 reports each. Ids are fixed, so
// repeated seeding overwrites rather than duplicates.
func (s *Service) SeedFederation(ctx context.Context) FederationResult {
	companies := SampleCompanies()
	reports := SampleReports()

	var result FederationResult

	companyErrs := s.companies.BulkUpsert(ctx, companies)
	for i, c := range companies {
		if companyErrs[i] != nil {
			result.Failed++
			s.logger.Warn("sample company rejected",
				zap.String("id", c.ID), zap.Error(companyErrs[i]))
			continue
		}
		result.Companies = append(result.Companies, c)
	}

	reportErrs := s.reports.BulkUpsert(ctx, reports)
	for i, rep := range reports {
		if reportErrs[i] != nil {
			result.Failed++
			s.logger.Warn("sample report rejected",
				zap.String("id", rep.ID), zap.Error(reportErrs[i]))
			continue
		}
		result.Reports = append(result.Reports, rep)
	}

	return result
}

// SeedNested writes the single nested-mode sample document.
func (s *Service) SeedNested(ctx context.Context) (domain.Person, error) {
	p := SamplePerson()
	if err := s.people.Upsert(ctx, p); err != nil {
		return domain.Person{}, fmt.Errorf("%w: seed person: %w", domain.ErrSearchBackend, err)
	}
	return p, nil
}
