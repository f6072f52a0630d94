package httpapi

import (
	"github.com/arkline/orgsearch/internal/domain"
	healthuc "github.com/arkline/orgsearch/internal/usecase/health"
)

// searchResponse is the federation-mode success envelope. Total counts
// parent-stage hits under the joint constraint, not raw child matches.
type searchResponse struct {
	Success   bool                    `json:"success"`
	Total     int                     `json:"total"`
	Companies []domain.CompanyReports `json:"companies"`
}

// insertSampleDataResponse echoes whatever the best-effort seeding accepted.
type insertSampleDataResponse struct {
	Success   bool             `json:"success"`
	Companies []domain.Company `json:"companies"`
	Reports   []domain.Report  `json:"reports"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type healthResponse struct {
	Status string                          `json:"status"`
	Checks map[string]healthuc.CheckResult `json:"checks"`
}
