package engine

import "fmt"

// ScanPolicy decides how far the per-word index scan runs.
type ScanPolicy string

const (
	// ScanStale fixes the upper bound at the word's length when the pass
	// starts. Positions created by insertions past that bound are never
	// visited; positions lost to deletions are visited and simply fail.
	ScanStale ScanPolicy = "stale"

	// ScanRecompute re-reads the word's length before every index, so the
	// scan follows the word as it grows or shrinks.
	ScanRecompute ScanPolicy = "recompute"
)

// ParseScanPolicy validates a policy name.
func ParseScanPolicy(s string) (ScanPolicy, error) {
	switch p := ScanPolicy(s); p {
	case ScanStale, ScanRecompute:
		return p, nil
	default:
		return "", fmt.Errorf("invalid scan policy %q: must be %q or %q", s, ScanStale, ScanRecompute)
	}
}

// bound returns the inclusive upper scan index.
func (p ScanPolicy) bound(initial, current int) int {
	if p == ScanRecompute {
		return current
	}
	return initial
}
