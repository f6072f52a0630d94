package orgsearch

import "github.com/arkline/orgsearch/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidFilter = domain.ErrInvalidFilter
	ErrSearchBackend = domain.ErrSearchBackend
	ErrSchema        = domain.ErrSchema
	ErrNotFound      = domain.ErrNotFound
)
