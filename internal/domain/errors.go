package domain

import "errors"

var (
	// ErrInvalidFilter signals malformed filter input from a client.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrSearchBackend signals a search engine failure: unreachable backend,
	// rejected query, or an unparseable result set.
	ErrSearchBackend = errors.New("search backend error")
	// ErrSchema signals a failed index creation. Fatal at startup.
	ErrSchema = errors.New("schema error")
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
)
