package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/roach88/pavsca/internal/ir"
)

// RunState summarizes a run reconstructed from its application log.
type RunState struct {
	Run          ir.Run
	Applications []ir.Application
	LastSeq      int64

	// Words maps each changed word's index to its final rendered form.
	Words map[int]string

	// RulesFired is the number of distinct rule lines with at least one
	// application.
	RulesFired int

	// Broken lists word indices whose application chain is discontinuous:
	// an application's Before differs from the previous application's After.
	Broken []int
}

// GetRunState reads a run and replays its applications to recover the final
// form of every changed word.
func (s *Store) GetRunState(ctx context.Context, runID string) (RunState, error) {
	run, err := s.ReadRun(ctx, runID)
	if err != nil {
		return RunState{}, fmt.Errorf("get run state: %w", err)
	}

	apps, err := s.Applications(ctx, runID)
	if err != nil {
		return RunState{}, fmt.Errorf("get run state: %w", err)
	}

	state := RunState{
		Run:          run,
		Applications: apps,
		Words:        make(map[int]string),
	}

	rules := make(map[int]struct{})
	broken := make(map[int]struct{})
	for _, app := range apps {
		if prev, ok := state.Words[app.WordIndex]; ok && prev != app.Before {
			broken[app.WordIndex] = struct{}{}
		}
		state.Words[app.WordIndex] = app.After
		rules[app.RuleLine] = struct{}{}
		if app.Seq > state.LastSeq {
			state.LastSeq = app.Seq
		}
	}
	state.RulesFired = len(rules)

	for wi := range broken {
		state.Broken = append(state.Broken, wi)
	}
	sort.Ints(state.Broken)

	return state, nil
}
