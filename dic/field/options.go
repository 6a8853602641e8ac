package field

import (
	"runtime"

	"github.com/sirupsen/logrus"
)

// Option configures a displacement field computation.
type Option func(*config)

type config struct {
	restricted bool
	workers    int
	logger     logrus.FieldLogger
}

func newConfig(opts []Option) config {
	cfg := config{
		workers: runtime.GOMAXPROCS(0),
		logger:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRestricted confines the search for the best match to the focal tile
// when v is true. The default compares each tile against the whole domain.
func WithRestricted(v bool) Option {
	return func(c *config) {
		c.restricted = v
	}
}

// WithWorkers sets the number of tiles processed concurrently. Values below 1
// are ignored; 1 processes tiles sequentially.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.workers = n
		}
	}
}

// WithLogger sets the logger receiving per-tile debug entries and a summary
// per call. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
