package domain

// Company is the parent entity of the federation pair. ID is the join key;
// re-indexing with the same ID overwrites.
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Report is the child entity. CompanyID references Company.ID with no
// enforced referential integrity; the join happens at query time.
type Report struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	CompanyID string   `json:"company_id"`
	Tags      []string `json:"tags"`
	Status    string   `json:"status"`
}

// CompanyReports is a company decorated with the subset of matched reports
// that reference it.
type CompanyReports struct {
	Company
	Reports []Report `json:"reports"`
}
