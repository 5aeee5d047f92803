// Package engine implements the pavsca rule application engine.
//
// The engine applies compiled rules to a batch of words. For each rule, in
// file order, and each word, in list order, it scans candidate start
// indices in increasing order. At every index where CanApplyAt succeeds it
// mutates the word with ApplyAt, then repairs syllable structure before
// moving on to the next index.
//
// ARCHITECTURE:
//
// Single-threaded evaluation:
// Rules, words and indices are processed strictly sequentially. No two
// applications run concurrently and no word is shared between mutators.
// This keeps every run reproducible: the same rules and words always
// produce the same output and the same application trace.
//
// Scan bound:
// Mutations change word length mid-scan. ScanStale fixes the bound at the
// length the word had when the pass began; ScanRecompute re-reads the length
// after every index. The per-word application quota guarantees termination
// under either policy.
//
// Tracing:
// Each successful application is stamped with a logical sequence number from
// Clock and handed to an optional Recorder (the SQLite trace store in
// production, an in-memory recorder in tests).
//
// Failure policy:
// Every error is fatal to the run. There is no rollback of words already
// mutated; callers must discard them and write no output.
package engine
