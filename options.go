package dbpool

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Option configures pool construction for advanced use cases.
type Option func(*buildOptions)

type buildOptions struct {
	logger            *zap.Logger
	leakThreshold     time.Duration
	pgxConfigModifier func(*pgxpool.Config)
}

// WithLogger sets the logger used for pool lifecycle messages and
// leak-detection warnings. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *buildOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLeakDetectionThreshold overrides the duration after which a
// held-but-unreleased connection is reported as a likely leak.
func WithLeakDetectionThreshold(d time.Duration) Option {
	return func(o *buildOptions) {
		if d > 0 {
			o.leakThreshold = d
		}
	}
}

// WithPgxConfig allows low-level pgxpool configuration for the networked
// backend. The modifier runs after standard configuration is applied. It is
// ignored by the embedded backend (I4).
func WithPgxConfig(fn func(*pgxpool.Config)) Option {
	return func(o *buildOptions) {
		o.pgxConfigModifier = fn
	}
}

func applyOptions(opts []Option) buildOptions {
	o := buildOptions{logger: zap.NewNop()}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}

	return o
}
