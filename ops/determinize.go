// Package ops implements the closure algorithms that transform one or two
// automata into a new automaton: determinize, minimize, trim, union,
// concatenation, option, Kleene star, Kleene plus, intersection,
// difference, complement, and reverse.
//
// Each operation picks whichever automaton representation it needs
// (NFA for the Thompson-style constructions, DFA for product and totalize
// constructions), applies itself, and hands the result to the next stage
// of a compile.
package ops

import (
	"strconv"
	"strings"

	"github.com/coregx/alang/automaton"
	"github.com/coregx/alang/dfa"
	"github.com/coregx/alang/nfa"
)

// subsetKey returns a stable string key for a sorted slice of states, used
// to intern subsets during determinization. A Go string already behaves as
// an immutable hashed value under map[string]V: content-equal strings hash
// and compare equal, so no bespoke hash/cache-key type is needed.
func subsetKey(states []automaton.State) string {
	var b strings.Builder
	for i, s := range states {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(s)))
	}
	return b.String()
}

// Determinize performs subset construction: the epsilon closure of n's
// initial states becomes the DFA's initial state (state 0); a work queue
// of frontier subsets is expanded by stepping on each available symbol and
// epsilon-closing the result, interning subsets by content so that equal
// subsets map to the same DFA state.
func Determinize(n *nfa.NFA) *dfa.DFA {
	d := dfa.New(n.Alphabet())

	startClosure := n.Closure(n.InitialStates())

	subsetState := make(map[string]automaton.State)
	startState := d.AllocState()
	subsetState[subsetKey(startClosure)] = startState
	d.SetInitialState(startState)
	if intersectsFinal(n, startClosure) {
		d.SetFinal(startState, true)
	}

	type frontier struct {
		subset []automaton.State
		state  automaton.State
	}
	queue := []frontier{{startClosure, startState}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, sym := range n.AvailableSymbols(cur.subset) {
			target := n.Reachable(cur.subset, sym)
			if len(target) == 0 {
				continue
			}
			key := subsetKey(target)
			ts, known := subsetState[key]
			if !known {
				ts = d.AllocState()
				subsetState[key] = ts
				if intersectsFinal(n, target) {
					d.SetFinal(ts, true)
				}
				queue = append(queue, frontier{target, ts})
			}
			d.Add(automaton.Transition{From: cur.state, Symbol: sym, To: ts})
		}
	}

	return d
}

func intersectsFinal(n *nfa.NFA, states []automaton.State) bool {
	for _, s := range states {
		if n.IsFinal(s) {
			return true
		}
	}
	return false
}
