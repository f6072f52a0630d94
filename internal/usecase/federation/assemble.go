package federation

import "github.com/arkline/orgsearch/internal/domain"

// attachReports joins the parent page with the matched child set by exact
// company_id == id equality. Every returned company carries at least one
// report: its id came from the extracted key set. Children are attached in
// full; pagination applies only to the parent dimension.
func attachReports(companies []domain.Company, reports []domain.Report) []domain.CompanyReports {
	byCompany := make(map[string][]domain.Report, len(companies))
	for _, rep := range reports {
		byCompany[rep.CompanyID] = append(byCompany[rep.CompanyID], rep)
	}

	out := make([]domain.CompanyReports, 0, len(companies))
	for _, c := range companies {
		reps := byCompany[c.ID]
		if reps == nil {
			reps = []domain.Report{}
		}
		out = append(out, domain.CompanyReports{Company: c, Reports: reps})
	}
	return out
}
