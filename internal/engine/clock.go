package engine

import "sync/atomic"

// Clock is a monotonic logical clock for ordering rule applications.
//
// Every recorded application is stamped with a strictly increasing seq
// number. Trace order therefore never depends on wall-clock time, and the
// same run always produces the same sequence.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a new clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// Next returns the next sequence number and increments the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
