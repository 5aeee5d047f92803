package ir

import "strings"

// Pair is one aligned position of a compiled rule: what must match (From)
// and what it becomes (To). An empty From is an insertion slot; an empty
// To is a deletion.
type Pair struct {
	From PhonemeSet `json:"from"`
	To   PhonemeSet `json:"to"`
}

// Rule is a compiled Target/Replacement/Environment rule.
//
// INVARIANT: From and To of every pair come from equal-length sequences;
// there is exactly one Pair per aligned position.
type Rule struct {
	// Line is the 1-based rule-file line the rule was compiled from (0 if unknown).
	Line int `json:"line,omitempty"`

	// Source is the rule text as written, e.g. "p/f/#_m".
	Source string `json:"source"`

	// Pairs are the aligned (from, to) positions in match order.
	Pairs []Pair `json:"pairs"`
}

// From returns the match side of the rule.
func (r *Rule) From() []PhonemeSet {
	sets := make([]PhonemeSet, len(r.Pairs))
	for i, p := range r.Pairs {
		sets[i] = p.From
	}
	return sets
}

// To returns the replacement side of the rule.
func (r *Rule) To() []PhonemeSet {
	sets := make([]PhonemeSet, len(r.Pairs))
	for i, p := range r.Pairs {
		sets[i] = p.To
	}
	return sets
}

// String renders the aligned pairs, e.g. "([#] [#]) ([p] [f]) ([m] [m])".
func (r *Rule) String() string {
	parts := make([]string, len(r.Pairs))
	for i, p := range r.Pairs {
		parts[i] = "(" + p.From.String() + " " + p.To.String() + ")"
	}
	return strings.Join(parts, " ")
}
