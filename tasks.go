package dbpool

import "context"

// OpenTaskPool builds the dedicated serial background-task pool. It uses the
// same URI and pragma construction as OpenEmbedded against the same database
// file, but the pool is forced to exactly one connection regardless of any
// configured size (I3).
//
// Background tasks against a single-writer embedded engine must not
// interleave with themselves: constraining the pool to one connection turns
// its acquire/release discipline into the task-execution mutex, with no
// separate lock object. Blocked acquirers are served in approximately FIFO
// order (the database/sql wait queue); strict fairness is not guaranteed.
func OpenTaskPool(ctx context.Context, props DatabaseProperties, opts ...Option) (*EmbeddedPool, error) {
	return openEmbedded(ctx, props, TaskPoolName, 1, opts)
}
