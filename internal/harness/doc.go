// Package harness provides conformance testing for pavsca rule files.
//
// The harness compiles a scenario's rules, applies them to its words with
// the real engine, records every application in an in-memory trace store,
// and checks the outcome against the scenario's expectations.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	rules: |
//	  V = a, i, u
//	  h//V_V
//	words:
//	  - "'a.ha"
//	expect:
//	  - a.a
//	applications: 1
//
// A scenario that should fail names the error code instead of expect:
//
//	error: UNDEFINED_CATEGORY
//
// Optional settings: scan ("stale" or "recompute"), fuse_length, and
// max_applications.
//
// # Checks
//
//   - expect: rendered output, word by word
//   - error: compile or runtime error code
//   - applications: total number of rule applications
//   - trace consistency: the stored trace matches the engine's count, and
//     each application of a word starts from the previous one's result
//
// # Deterministic Testing
//
// Each scenario runs in a fresh in-memory SQLite database with a fixed run
// ID. Application order comes from the engine's logical clock, so traces are
// identical across runs and can be compared against golden files.
package harness
