// Package filter holds the typed, optional-field filter objects accepted by
// the search API and compiles them into query expressions. Absent fields
// contribute no clause; a fully empty filter compiles to match-all.
package filter

import (
	"strings"
	"unicode"

	"github.com/arkline/orgsearch/internal/domain"
	"github.com/arkline/orgsearch/internal/domain/search/query"
)

// Company filters the parent index. Zero values mean "not set".
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Report filters the child index.
type Report struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Tags   []string `json:"tags"`
	Status string   `json:"status"`
}

// Person filters the nested-mode parent document. Age 0 means "not set",
// matching the absent/falsy rule of the filter contract.
type Person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// Child filters the embedded children of a Person. All present fields must
// be satisfied by one single embedded element.
type Child struct {
	Name    string `json:"name"`
	Grade   int    `json:"grade"`
	Hobbies string `json:"hobbies"`
}

// CompileCompany compiles a company filter. Clause order is fixed (id, name)
// so compiled expressions are deterministic.
func CompileCompany(f Company) query.Expression {
	var clauses []query.Clause
	if f.ID != "" {
		clauses = append(clauses, query.Term(domain.FieldID, f.ID))
	}
	if f.Name != "" {
		clauses = append(clauses, query.Match(domain.FieldName, f.Name))
	}
	return query.New(clauses...)
}

// CompileReport compiles a report filter in fixed clause order
// (id, name, tags, status). Tags match exactly against the un-analyzed tag
// field, any value of the set.
func CompileReport(f Report) query.Expression {
	var clauses []query.Clause
	if f.ID != "" {
		clauses = append(clauses, query.Term(domain.FieldID, f.ID))
	}
	if f.Name != "" {
		clauses = append(clauses, query.Match(domain.FieldName, f.Name))
	}
	if len(f.Tags) > 0 {
		clauses = append(clauses, query.AnyOf(domain.FieldTags, f.Tags))
	}
	if f.Status != "" {
		clauses = append(clauses, query.Term(domain.FieldStatus, f.Status))
	}
	return query.New(clauses...)
}

// CompilePerson compiles the combined parent+child filter for the nested
// index. When the child filter compiles to zero clauses no nested clause is
// added at all and the parent filter alone governs.
func CompilePerson(p Person, c Child) query.Expression {
	var clauses []query.Clause
	if p.Name != "" {
		clauses = append(clauses, query.Match(domain.FieldName, p.Name))
	}
	if p.Age != 0 {
		clauses = append(clauses, query.NumericEq(domain.FieldAge, float64(p.Age)))
	}
	if inner := compileChild(c); len(inner) > 0 {
		clauses = append(clauses, query.Nested(domain.ChildPath, inner))
	}
	return query.New(clauses...)
}

// compileChild produces the child-relative clauses in fixed order
// (name, grade, hobbies).
func compileChild(c Child) []query.Clause {
	var clauses []query.Clause
	if c.Name != "" {
		clauses = append(clauses, query.Match(domain.FieldChildName, c.Name))
	}
	if c.Grade != 0 {
		clauses = append(clauses, query.NumericEq(domain.FieldChildGrade, float64(c.Grade)))
	}
	if c.Hobbies != "" {
		clauses = append(clauses, query.Match(domain.FieldChildHobbies, c.Hobbies))
	}
	return clauses
}

// IsEmpty reports whether the child filter carries no conditions.
func (f Child) IsEmpty() bool {
	return f.Name == "" && f.Grade == 0 && f.Hobbies == ""
}

// Matches reports whether a single embedded child satisfies every present
// condition of the filter. Text fields use analyzed-match semantics: every
// query token must appear among the field's tokens, case-insensitively.
func (f Child) Matches(c domain.Child) bool {
	if f.Name != "" && !matchText(c.Name, f.Name) {
		return false
	}
	if f.Grade != 0 && c.Grade != f.Grade {
		return false
	}
	if f.Hobbies != "" && !matchText(c.Hobbies, f.Hobbies) {
		return false
	}
	return true
}

func matchText(fieldValue, queryText string) bool {
	fieldTokens := tokenize(fieldValue)
	for _, qt := range tokenize(queryText) {
		found := false
		for _, ft := range fieldTokens {
			if ft == qt {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
