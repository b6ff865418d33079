package ops

import (
	"github.com/coregx/alang/automaton"
	"github.com/coregx/alang/dfa"
	"github.com/coregx/alang/nfa"
)

// Reverse builds the NFA accepting the reverse language of d: every
// transition's From/To are swapped, and initial/final roles are swapped
// (d's final states become the reversed NFA's initial states; d's initial
// state becomes its sole final state).
func Reverse(d *dfa.DFA) *nfa.NFA {
	n := nfa.New(d.Alphabet())

	for _, t := range d.AllTransitions() {
		n.AddTransition(automaton.Transition{From: t.To, Symbol: t.Symbol, To: t.From})
	}
	for _, f := range d.FinalStates() {
		n.SetInitial(f, true)
	}
	if d.InitialState() != automaton.InvalidState {
		n.SetFinal(d.InitialState(), true)
	}
	return n
}
