package dbpool

import (
	"context"
	"errors"
)

// ErrNotMocked is returned when a TestPool method is called without a
// corresponding Func field set.
var ErrNotMocked = errors.New("dbpool.TestPool: method not mocked — set the corresponding Func field")

// TestPool is a mock ConnectionPool implementation for unit tests in
// consuming packages.
type TestPool struct {
	// NameValue, BackendValue, and MaxSizeValue are returned by the
	// corresponding methods.
	NameValue    string
	BackendValue BackendKind
	MaxSizeValue int32

	AcquireFunc func(ctx context.Context) (Conn, error)
	PingFunc    func(ctx context.Context) error
	CloseFunc   func() error
}

var _ ConnectionPool = (*TestPool)(nil)

func (t *TestPool) Name() string { return t.NameValue }

func (t *TestPool) Backend() BackendKind { return t.BackendValue }

func (t *TestPool) MaxSize() int32 {
	if t.MaxSizeValue >= 1 {
		return t.MaxSizeValue
	}
	return 1
}

func (t *TestPool) Acquire(ctx context.Context) (Conn, error) {
	if t.AcquireFunc != nil {
		return t.AcquireFunc(ctx)
	}
	return nil, ErrNotMocked
}

func (t *TestPool) Ping(ctx context.Context) error {
	if t.PingFunc != nil {
		return t.PingFunc(ctx)
	}
	return nil
}

func (t *TestPool) Close() error {
	if t.CloseFunc != nil {
		return t.CloseFunc()
	}
	return nil
}

// TestConn is a mock Conn whose Release invokes ReleaseFunc when set.
type TestConn struct {
	ReleaseFunc func()
}

var _ Conn = (*TestConn)(nil)

func (c *TestConn) Release() {
	if c.ReleaseFunc != nil {
		c.ReleaseFunc()
	}
}
