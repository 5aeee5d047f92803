// Package compiler turns rule-file commands into compiled rules.
//
// A rule file is a sequence of commands, processed in order:
//
//	// comment
//	<consonant>, C = p, t, k
//	p/f/#_m
//
// Definition commands bind one or more category names to a shared list of
// alternative phonemes in a Registry. Rule commands are written as
// TARGET/REPLACEMENT/ENVIRONMENT in compact phoneme-set notation; the
// compiler tokenizes each segment, pads target and replacement to equal
// length with empty sets, and splices them into the environment at the
// insertion point ('_') to produce aligned (from, to) pairs.
//
// Compilation is fail-fast: the first CompileError aborts the program.
package compiler
