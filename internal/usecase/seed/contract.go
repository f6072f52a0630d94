package seed

import (
	"context"

	"github.com/arkline/orgsearch/internal/domain"
)

// CompanyWriter bulk-writes companies, returning index-aligned per-item errors.
type CompanyWriter interface {
	BulkUpsert(ctx context.Context, companies []domain.Company) []error
}

// ReportWriter bulk-writes reports, returning index-aligned per-item errors.
type ReportWriter interface {
	BulkUpsert(ctx context.Context, reports []domain.Report) []error
}

// PersonWriter writes a single person document.
type PersonWriter interface {
	Upsert(ctx context.Context, p domain.Person) error
}
