package ops

import (
	"github.com/coregx/alang/automaton"
	"github.com/coregx/alang/dfa"
)

// Trim removes states that are not both accessible from the initial state
// and co-accessible to some final state.
func Trim(d *dfa.DFA) *dfa.DFA {
	accessible := forwardReachable(d)
	coaccessible := backwardReachable(d)

	keep := make(map[automaton.State]bool)
	for s := range accessible {
		if coaccessible[s] {
			keep[s] = true
		}
	}

	out := dfa.New(d.Alphabet())
	if d.InitialState() != automaton.InvalidState && keep[d.InitialState()] {
		out.SetInitialState(d.InitialState())
	}
	for _, f := range d.FinalStates() {
		if keep[f] {
			out.SetFinal(f, true)
		}
	}
	for _, t := range d.AllTransitions() {
		if keep[t.From] && keep[t.To] {
			out.Add(t)
		}
	}
	return out
}

func forwardReachable(d *dfa.DFA) map[automaton.State]bool {
	seen := make(map[automaton.State]bool)
	if d.InitialState() == automaton.InvalidState {
		return seen
	}
	queue := []automaton.State{d.InitialState()}
	seen[d.InitialState()] = true
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, t := range d.TransitionsFrom(s) {
			if !seen[t.To] {
				seen[t.To] = true
				queue = append(queue, t.To)
			}
		}
	}
	return seen
}

func backwardReachable(d *dfa.DFA) map[automaton.State]bool {
	preds := make(map[automaton.State][]automaton.State)
	for _, t := range d.AllTransitions() {
		preds[t.To] = append(preds[t.To], t.From)
	}

	seen := make(map[automaton.State]bool)
	queue := append([]automaton.State(nil), d.FinalStates()...)
	for _, f := range d.FinalStates() {
		seen[f] = true
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, p := range preds[s] {
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}
	return seen
}
