// Package dbpool provisions the application's database connection pools: it
// selects the storage backend from configuration, translates backend-specific
// connection parameters, and builds tuned pools for the two workloads the
// application runs, general queries and a serialized background-task queue.
//
// Invariants:
//
//   - I1: a pool's maximum size is never below 1.
//   - I2: embedded in-memory targets always get a single-connection pool;
//     separate physical connections to an in-memory SQLite database do not
//     share state.
//   - I3: the task pool holds exactly one connection, unconditionally; its
//     acquire/release discipline is the task-execution mutex.
//   - I4: parameter namespaces are partitioned per backend. The networked
//     backend never receives SQLite pragmas; the embedded backend never
//     receives server tuning keys.
//   - I5: configuration problems (malformed URI, pragma, or duration) fail at
//     pool construction, never lazily on first query.
//   - I6: insecure development credentials are opt-in via
//     Environment.DevelopmentMode, never an ambient default.
//
// The pools are handed to the migration and query layers as opaque connection
// sources. This package does not execute application SQL itself.
package dbpool
