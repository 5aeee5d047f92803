// Package store provides SQLite-backed durable storage for application traces.
//
// The store is an append-only log with:
//   - Runs: one record per engine invocation over a rule file and word list
//   - Applications: one record per successful rule application to a word
//
// # Ordering
//
// Applications are ordered by their seq (the engine's logical clock), never
// by timestamps. Every query that returns applications includes
// ORDER BY seq ASC so results are identical across reads.
//
// Runs are ordered by id. Run IDs are UUIDv7, which sort by creation time.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
