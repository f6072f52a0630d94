package domain

// KeyPrefix namespaces every Redis key and index owned by orgsearch.
const KeyPrefix = "orgsearch:"

// Mode selects which of the two serving variants a process runs.
type Mode string

const (
	// ModeFederation serves the two-index company/report federation API.
	ModeFederation Mode = "federation"
	// ModeNested serves the single-index people API with embedded children.
	ModeNested Mode = "nested"
)

// Valid reports whether the mode is one of the two known variants.
func (m Mode) Valid() bool {
	return m == ModeFederation || m == ModeNested
}
