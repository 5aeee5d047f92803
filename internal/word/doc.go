// Package word models a word as an ordered sequence of syllables.
//
// Callers address phonemes through a flat index space: the concatenation of
// every syllable's phonemes in order. Flat operations (At, StressAt,
// Replace, Insert, Remove) resolve a flat index to a syllable by linear
// scan. Mutations may leave a syllable without a nucleus; Repair restores
// the invariant that every syllable carries at least one nucleus phoneme.
//
// A Word is owned by exactly one caller at a time and is not safe for
// concurrent use.
package word
