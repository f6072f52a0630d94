// Package query models a structured boolean search query as an ordered
// conjunction of clauses. The db layer renders an Expression into the
// backend's query syntax; an empty Expression renders as match-all.
package query

// Kind discriminates clause shapes.
type Kind int

const (
	// KindTerm is an exact match on an un-analyzed field.
	KindTerm Kind = iota
	// KindMatch is a full-text match on an analyzed field.
	KindMatch
	// KindAnyOf is an exact match against any of a set of values.
	KindAnyOf
	// KindNumericEq is an exact numeric match.
	KindNumericEq
	// KindNested scopes a conjunction of clauses to an embedded collection
	// path: a document matches only if a single embedded element satisfies
	// every inner clause.
	KindNested
)

// Clause is a single query condition.
type Clause struct {
	kind     Kind
	field    string
	value    string
	values   []string
	number   float64
	children []Clause
}

// Term creates an exact-match clause.
func Term(field, value string) Clause {
	return Clause{kind: KindTerm, field: field, value: value}
}

// Match creates a full-text match clause.
func Match(field, text string) Clause {
	return Clause{kind: KindMatch, field: field, value: text}
}

// AnyOf creates an exact-match-any clause over a value set.
func AnyOf(field string, values []string) Clause {
	return Clause{kind: KindAnyOf, field: field, values: values}
}

// NumericEq creates an exact numeric match clause.
func NumericEq(field string, n float64) Clause {
	return Clause{kind: KindNumericEq, field: field, number: n}
}

// Nested wraps inner clauses into a single same-element conjunction scoped
// to the given embedded collection path.
func Nested(path string, inner []Clause) Clause {
	return Clause{kind: KindNested, field: path, children: inner}
}

// Kind returns the clause kind.
func (c Clause) Kind() Kind { return c.kind }

// Field returns the target field name (the collection path for nested clauses).
func (c Clause) Field() string { return c.field }

// Value returns the term or match value.
func (c Clause) Value() string { return c.value }

// Values returns the any-of value set.
func (c Clause) Values() []string { return c.values }

// Number returns the numeric match value.
func (c Clause) Number() float64 { return c.number }

// Children returns the inner clauses of a nested scope.
func (c Clause) Children() []Clause { return c.children }

// Expression is an ordered conjunction of clauses.
type Expression struct {
	clauses []Clause
}

// New creates an Expression from clauses, in order.
func New(clauses ...Clause) Expression {
	return Expression{clauses: clauses}
}

// With returns a copy of the expression with extra clauses appended.
func (e Expression) With(clauses ...Clause) Expression {
	combined := make([]Clause, 0, len(e.clauses)+len(clauses))
	combined = append(combined, e.clauses...)
	combined = append(combined, clauses...)
	return Expression{clauses: combined}
}

// Clauses returns the clause list in compilation order.
func (e Expression) Clauses() []Clause { return e.clauses }

// IsEmpty reports whether the expression has no clauses (match-all).
func (e Expression) IsEmpty() bool { return len(e.clauses) == 0 }
