package engine

import "fmt"

// DefaultMaxApplications is the default per-rule, per-word application limit.
const DefaultMaxApplications = 10000

// Quota counts applications of one rule to one word and enforces a limit.
//
// Under ScanStale a rule can apply at most length+1 times per word, so the
// quota never trips. Under ScanRecompute a rule that keeps growing the word
// ahead of the scan (e.g. epenthesis before a word boundary) would never
// finish without it.
type Quota struct {
	max     int
	current int
}

// NewQuota creates a quota with the given limit.
func NewQuota(max int) *Quota {
	return &Quota{max: max}
}

// Check increments the counter and fails once the limit is exceeded.
func (q *Quota) Check() error {
	q.current++
	if q.current > q.max {
		return &RuntimeError{
			Code:    ErrCodeApplicationLimit,
			Message: fmt.Sprintf("rule applied %d times to one word (limit %d)", q.current, q.max),
		}
	}
	return nil
}

// Current returns the number of applications counted so far.
func (q *Quota) Current() int {
	return q.current
}
