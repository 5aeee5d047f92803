// Package ir provides the foundational value types for pavsca.
//
// This package contains type definitions and pure helpers only. All other
// internal packages import ir; ir imports nothing internal. This keeps the
// phoneme and compiled-rule representation the bottom layer with no
// circular dependencies.
//
// Key design constraints:
//   - Phoneme equality is value equality on the symbol string
//   - A compiled Rule always has From and To aligned pair-for-pair
//   - All symbol text is NFC normalized at the input boundary
//   - Trace records use logical sequence numbers, never wall-clock ordering
package ir
