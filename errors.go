package dbpool

import "errors"

// ErrPoolExhausted is returned by Acquire when every connection is in use and
// the acquisition timed out. It is retriable; the pool itself remains usable.
var ErrPoolExhausted = errors.New("dbpool: pool exhausted (acquisition timed out)")

// SafeError wraps a cause with an error string safe for default production
// logging. The wrapped cause may still contain sensitive detail such as DSN
// content.
type SafeError struct {
	msg   string
	cause error
}

func (e *SafeError) Error() string { return e.msg }
func (e *SafeError) Unwrap() error { return e.cause }
