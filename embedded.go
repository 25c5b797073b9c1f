package dbpool

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite" // register database/sql driver
)

// openEmbeddedDB is a package-private seam used by tests to force
// deterministic open failures without touching the filesystem.
var openEmbeddedDB = sql.Open

// EmbeddedPool is a ConnectionPool backed by the in-process SQLite engine
// through database/sql. It intentionally wraps (does not embed) *sql.DB.
type EmbeddedPool struct {
	db             *sql.DB
	name           string
	maxSize        int32
	acquireTimeout time.Duration
	leakThreshold  time.Duration
	l              *zap.Logger
}

var _ ConnectionPool = (*EmbeddedPool)(nil)

// OpenEmbedded builds the primary application pool for the embedded-file
// backend. The pool size follows the precedence documented on
// embeddedPoolSize; pragma, journal-mode, and busy-timeout parameters apply
// to every connection the pool opens. Generated-key retrieval is not used by
// the consuming layers and is left unconfigured.
func OpenEmbedded(ctx context.Context, props DatabaseProperties, opts ...Option) (*EmbeddedPool, error) {
	return openEmbedded(ctx, props, PrimaryPoolName, embeddedPoolSize(props), opts)
}

func openEmbedded(ctx context.Context, props DatabaseProperties, name string, size int, opts []Option) (*EmbeddedPool, error) {
	o := applyOptions(opts)

	dsn, err := embeddedDSN(props)
	if err != nil {
		return nil, err
	}

	db, err := openEmbeddedDB("sqlite", dsn)
	if err != nil {
		return nil, &SafeError{
			msg:   fmt.Sprintf("dbpool: failed to open embedded database (pool=%s)", name),
			cause: err,
		}
	}

	db.SetMaxOpenConns(size)
	db.SetMaxIdleConns(size)

	// Connections to an in-process file are never stale, and reaping the
	// last connection of an in-memory database would destroy its contents.
	db.SetConnMaxIdleTime(0)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &SafeError{
			msg:   fmt.Sprintf("dbpool: embedded database ping failed (pool=%s, file=%s)", name, props.File),
			cause: err,
		}
	}

	leak := o.leakThreshold
	if leak == 0 {
		leak = defaultLeakThreshold
	}

	o.logger.Debug("opened embedded pool",
		zap.String("pool", name),
		zap.String("file", props.File),
		zap.Int("size", size),
	)

	return &EmbeddedPool{
		db:             db,
		name:           name,
		maxSize:        int32(size),
		acquireTimeout: defaultConnectTimeout,
		leakThreshold:  leak,
		l:              o.logger,
	}, nil
}

// Name implements ConnectionPool.
func (p *EmbeddedPool) Name() string { return p.name }

// Backend implements ConnectionPool.
func (p *EmbeddedPool) Backend() BackendKind { return EmbeddedFile }

// MaxSize implements ConnectionPool.
func (p *EmbeddedPool) MaxSize() int32 { return p.maxSize }

// Acquire implements ConnectionPool. The returned Conn is an *EmbeddedConn.
func (p *EmbeddedPool) Acquire(ctx context.Context) (Conn, error) {
	ctx, cancel := context.WithTimeout(ctx, p.acquireTimeout)
	defer cancel()

	conn, err := p.db.Conn(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: pool %q", ErrPoolExhausted, p.name)
		}
		return nil, err
	}

	return &EmbeddedConn{
		Conn:  conn,
		guard: startLeakGuard(p.l, p.name, p.leakThreshold),
	}, nil
}

// Ping implements ConnectionPool.
func (p *EmbeddedPool) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close implements ConnectionPool.
func (p *EmbeddedPool) Close() error {
	return p.db.Close()
}

// Stats returns a snapshot of driver-native pool statistics.
func (p *EmbeddedPool) Stats() sql.DBStats {
	return p.db.Stats()
}

// EmbeddedConn is a connection acquired from an EmbeddedPool.
type EmbeddedConn struct {
	*sql.Conn

	guard *leakGuard
	once  sync.Once
}

var _ Conn = (*EmbeddedConn)(nil)

// Release returns the connection to the pool. Idempotent.
func (c *EmbeddedConn) Release() {
	c.once.Do(func() {
		c.guard.stop()
		_ = c.Conn.Close()
	})
}
