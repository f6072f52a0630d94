// Package page holds the pagination and sort parameters of the parent-level
// query. Pagination applies only to the parent dimension; children are
// attached in full.
package page

import (
	"fmt"

	"github.com/arkline/orgsearch/internal/domain"
)

// Defaults and bounds for a page request.
const (
	DefaultNumber = 1
	DefaultSize   = 10
	MaxSize       = 100

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Page is a validated page request. SortField is already normalized to an
// index attribute name.
type Page struct {
	Number    int
	Size      int
	SortField string
	Ascending bool
}

// New validates the raw page parameters and applies defaults for zero
// values. The wire name "name.keyword" is accepted as an alias of "name";
// both sort on the un-analyzed name sibling.
func New(number, size int, sortField, sortOrder string) (Page, error) {
	if number == 0 {
		number = DefaultNumber
	}
	if number < 1 {
		return Page{}, fmt.Errorf("%w: page must be >= 1, got %d", domain.ErrInvalidFilter, number)
	}
	if size == 0 {
		size = DefaultSize
	}
	if size < 1 || size > MaxSize {
		return Page{}, fmt.Errorf("%w: size must be between 1 and %d, got %d", domain.ErrInvalidFilter, MaxSize, size)
	}

	var field string
	switch sortField {
	case "", "name", "name.keyword":
		field = domain.FieldNameKeyword
	case "id":
		field = domain.FieldID
	default:
		return Page{}, fmt.Errorf("%w: unsupported sort field %q", domain.ErrInvalidFilter, sortField)
	}

	var asc bool
	switch sortOrder {
	case "", OrderAsc:
		asc = true
	case OrderDesc:
		asc = false
	default:
		return Page{}, fmt.Errorf("%w: sort order must be %q or %q, got %q",
			domain.ErrInvalidFilter, OrderAsc, OrderDesc, sortOrder)
	}

	return Page{Number: number, Size: size, SortField: field, Ascending: asc}, nil
}

// Offset returns the zero-based result offset of the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}
