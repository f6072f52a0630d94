package seed

import (
	"fmt"

	"github.com/arkline/orgsearch/internal/domain"
)

const (
	companyCount      = 5
	reportsPerCompany = 3

	// StatusPublished and StatusDraft alternate across the sample reports,
	// starting with published.
	StatusPublished = "published"
	StatusDraft     = "draft"
)

var companyNames = []string{
	"Acme Analytics",
	"Borealis Energy",
	"Cascade Logistics",
	"Delta Robotics",
	"Evergreen Media",
}

var reportTags = [][]string{
	{"finance", "quarterly"},
	{"operations", "internal"},
	{"market", "annual"},
}

// SampleCompanies returns the five sample parent records, ids c1..c5.
func SampleCompanies() []domain.Company {
	companies := make([]domain.Company, companyCount)
	for i := range companies {
		companies[i] = domain.Company{
			ID:   fmt.Sprintf("c%d", i+1),
			Name: companyNames[i],
		}
	}
	return companies
}

// SampleReports returns r1..r15, three per company, statuses alternating
// published/draft starting published.
func SampleReports() []domain.Report {
	reports := make([]domain.Report, 0, companyCount*reportsPerCompany)
	for i := 0; i < companyCount*reportsPerCompany; i++ {
		status := StatusPublished
		if i%2 == 1 {
			status = StatusDraft
		}
		companyIdx := i / reportsPerCompany
		reports = append(reports, domain.Report{
			ID:        fmt.Sprintf("r%d", i+1),
			Name:      fmt.Sprintf("%s Report %d", companyNames[companyIdx], i%reportsPerCompany+1),
			CompanyID: fmt.Sprintf("c%d", companyIdx+1),
			Tags:      reportTags[i%reportsPerCompany],
			Status:    status,
		})
	}
	return reports
}

// SamplePerson returns the single nested-mode document with two embedded
// children.
func SamplePerson() domain.Person {
	return domain.Person{
		Name: "John",
		Age:  40,
		Children: []domain.Child{
			{Name: "Alice", Grade: 3, Hobbies: "painting chess"},
			{Name: "Bob", Grade: 5, Hobbies: "football"},
		},
	}
}
