package dbpool

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Fixed pool names, used for logging and metric labels.
const (
	// PrimaryPoolName is the general application pool, whichever backend
	// it targets.
	PrimaryPoolName = "primary"

	// TaskPoolName is the dedicated serial background-task pool.
	TaskPoolName = "tasks"
)

// Conn is a single acquired connection. Release must be called on every exit
// path (success, error, or cancellation) or the pool starves. Release is
// idempotent.
type Conn interface {
	Release()
}

// ConnectionPool is an opaque, thread-safe connection source. It is created
// once at startup and lives for the process lifetime; Close flushes idle
// connections and cancels pending acquisitions.
//
// Acquire blocks until a connection is available or the pool's acquisition
// timeout elapses, in which case it fails with ErrPoolExhausted. Blocked
// acquirers are served in approximately FIFO order; strict fairness is not
// guaranteed. A pool of size 1 therefore behaves as a mutex over its sole
// connection.
//
// Operational knobs beyond this contract (driver-native statistics, metric
// collection) live on the concrete pool types.
type ConnectionPool interface {
	// Name returns the fixed pool name.
	Name() string

	// Backend returns the storage engine this pool targets.
	Backend() BackendKind

	// MaxSize returns the pool's connection bound. Never below 1.
	MaxSize() int32

	// Acquire returns a connection, blocking up to the acquisition
	// timeout. The caller must Release it.
	Acquire(ctx context.Context) (Conn, error)

	// Ping verifies connectivity.
	Ping(ctx context.Context) error

	// Close releases all pool resources. Call once during graceful
	// shutdown.
	Close() error
}

// leakGuard flags a connection held past the leak-detection threshold. The
// warning is diagnostic only; the holder is never terminated, and the
// connection is eventually reclaimed by max-lifetime expiry.
type leakGuard struct {
	timer *time.Timer
}

func startLeakGuard(l *zap.Logger, pool string, threshold time.Duration) *leakGuard {
	if threshold <= 0 {
		return &leakGuard{}
	}

	acquired := time.Now()

	return &leakGuard{
		timer: time.AfterFunc(threshold, func() {
			l.Warn("connection held past leak detection threshold",
				zap.String("pool", pool),
				zap.Duration("threshold", threshold),
				zap.Time("acquired", acquired),
			)
		}),
	}
}

func (g *leakGuard) stop() {
	if g.timer != nil {
		g.timer.Stop()
	}
}
