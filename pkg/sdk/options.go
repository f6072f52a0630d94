package orgsearch

import (
	"time"

	"go.uber.org/zap"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	username string
	password string

	scanPageSize    int
	nestedResultCap int
	stageTimeout    time.Duration

	logger *zap.Logger
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithUsername sets the ACL username for authentication.
func WithUsername(username string) Option {
	return optionFunc(func(c *clientConfig) {
		c.username = username
	})
}

// WithScanPageSize sets the page size of the exhaustive child scan in
// federation searches.
func WithScanPageSize(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.scanPageSize = n
	})
}

// WithNestedResultCap bounds the candidate set fetched for a nested-mode
// search before in-memory child verification.
func WithNestedResultCap(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.nestedResultCap = n
	})
}

// WithStageTimeout bounds each engine call of a search separately.
// Zero disables the bound.
func WithStageTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.stageTimeout = d
	})
}

// WithLogger sets the logger used by the client. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}
