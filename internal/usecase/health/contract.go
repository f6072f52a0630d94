package health

import "context"

// EnginePinger checks search backend availability.
type EnginePinger interface {
	Ping(ctx context.Context) error
}
