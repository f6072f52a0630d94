package orgsearch

import (
	"github.com/arkline/orgsearch/internal/domain"
	"github.com/arkline/orgsearch/internal/domain/search/filter"
)

// Mode selects which serving variant the indexes are created for.
type Mode string

// Serving mode constants.
const (
	ModeFederation Mode = Mode(domain.ModeFederation)
	ModeNested     Mode = Mode(domain.ModeNested)
)

// Company is the parent entity of the federation pair.
type Company struct {
	ID   string
	Name string
}

// Report is the child entity; CompanyID references a Company by ID.
type Report struct {
	ID        string
	Name      string
	CompanyID string
	Tags      []string
	Status    string
}

// CompanyReports is a company together with the matched reports that
// reference it.
type CompanyReports struct {
	Company
	Reports []Report
}

// Child is an embedded sub-document of Person.
type Child struct {
	Name    string
	Grade   int
	Hobbies string
}

// Person is the nested-mode entity.
type Person struct {
	Name     string
	Age      int
	Children []Child
}

// CompanyFilter narrows the parent query. Zero values mean "not set".
type CompanyFilter struct {
	ID   string
	Name string
}

// ReportFilter narrows the child query.
type ReportFilter struct {
	ID     string
	Name   string
	Tags   []string
	Status string
}

// PersonFilter narrows the nested-mode parent document. Age 0 means "not set".
type PersonFilter struct {
	Name string
	Age  int
}

// ChildFilter narrows the embedded children. All present fields must be
// satisfied by one single embedded element.
type ChildFilter struct {
	Name    string
	Grade   int
	Hobbies string
}

// PageRequest carries parent-level pagination and sort parameters.
// Zero values take the server defaults (page 1, size 10, sort by name
// ascending).
type PageRequest struct {
	Page      int
	Size      int
	SortField string
	SortOrder string
}

// CompanySearchRequest is a federated search request.
type CompanySearchRequest struct {
	Companies CompanyFilter
	Reports   ReportFilter
	Page      PageRequest
}

// CompanySearchResult is the assembled federated payload. Total counts
// parent hits, not child matches.
type CompanySearchResult struct {
	Total     int
	Companies []CompanyReports
}

func toDomainCompany(c Company) domain.Company {
	return domain.Company{ID: c.ID, Name: c.Name}
}

func toDomainReport(r Report) domain.Report {
	return domain.Report{
		ID:        r.ID,
		Name:      r.Name,
		CompanyID: r.CompanyID,
		Tags:      r.Tags,
		Status:    r.Status,
	}
}

func toDomainPerson(p Person) domain.Person {
	children := make([]domain.Child, len(p.Children))
	for i, c := range p.Children {
		children[i] = domain.Child{Name: c.Name, Grade: c.Grade, Hobbies: c.Hobbies}
	}
	return domain.Person{Name: p.Name, Age: p.Age, Children: children}
}

func fromDomainReports(in []domain.Report) []Report {
	out := make([]Report, len(in))
	for i, r := range in {
		out[i] = Report{
			ID:        r.ID,
			Name:      r.Name,
			CompanyID: r.CompanyID,
			Tags:      r.Tags,
			Status:    r.Status,
		}
	}
	return out
}

func fromDomainCompanyReports(in []domain.CompanyReports) []CompanyReports {
	out := make([]CompanyReports, len(in))
	for i, cr := range in {
		out[i] = CompanyReports{
			Company: Company{ID: cr.ID, Name: cr.Name},
			Reports: fromDomainReports(cr.Reports),
		}
	}
	return out
}

func fromDomainPeople(in []domain.Person) []Person {
	out := make([]Person, len(in))
	for i, p := range in {
		children := make([]Child, len(p.Children))
		for j, c := range p.Children {
			children[j] = Child{Name: c.Name, Grade: c.Grade, Hobbies: c.Hobbies}
		}
		out[i] = Person{Name: p.Name, Age: p.Age, Children: children}
	}
	return out
}

func toFilterCompany(f CompanyFilter) filter.Company {
	return filter.Company{ID: f.ID, Name: f.Name}
}

func toFilterReport(f ReportFilter) filter.Report {
	return filter.Report{ID: f.ID, Name: f.Name, Tags: f.Tags, Status: f.Status}
}

func toFilterPerson(f PersonFilter) filter.Person {
	return filter.Person{Name: f.Name, Age: f.Age}
}

func toFilterChild(f ChildFilter) filter.Child {
	return filter.Child{Name: f.Name, Grade: f.Grade, Hobbies: f.Hobbies}
}
