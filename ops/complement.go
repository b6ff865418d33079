package ops

import (
	"github.com/coregx/alang/automaton"
	"github.com/coregx/alang/dfa"
)

// Totalize returns a DFA equivalent to d but with a transition defined for
// every (state, symbol) pair over d's own alphabet: a single fresh,
// non-final sink state absorbs every missing transition and loops back to
// itself on every symbol.
func Totalize(d *dfa.DFA) *dfa.DFA {
	alph := d.Alphabet()
	out := dfa.New(alph)

	if d.InitialState() == automaton.InvalidState {
		// No initial state: the whole language is empty. A totalized DFA
		// still needs somewhere for every symbol to go, so the sink alone
		// is both initial and the only state.
		sink := out.AllocState()
		out.SetInitialState(sink)
		for sym := automaton.Symbol(0); int(sym) < alph.Size(); sym++ {
			out.Add(automaton.Transition{From: sink, Symbol: sym, To: sink})
		}
		return out
	}

	out.SetInitialState(d.InitialState())
	for _, f := range d.FinalStates() {
		out.SetFinal(f, true)
	}
	for _, t := range d.AllTransitions() {
		out.Add(t)
	}

	sink := out.AllocState()
	for s := automaton.State(0); s <= d.MaxState(); s++ {
		for sym := automaton.Symbol(0); int(sym) < alph.Size(); sym++ {
			if out.Transition(s, sym) == automaton.InvalidState {
				out.Add(automaton.Transition{From: s, Symbol: sym, To: sink})
			}
		}
	}
	for sym := automaton.Symbol(0); int(sym) < alph.Size(); sym++ {
		out.Add(automaton.Transition{From: sink, Symbol: sym, To: sink})
	}
	return out
}

// Complement returns the DFA accepting every string over d's own alphabet
// that d does not accept. d is totalized first so that every string has a
// run to flip the finality of; complement is always taken against the
// operand's own alphabet, never an alphabet inferred from elsewhere (see
// DESIGN.md, "complement semantics").
func Complement(d *dfa.DFA) *dfa.DFA {
	total := Totalize(d)
	out := dfa.New(total.Alphabet())
	out.SetInitialState(total.InitialState())
	for _, t := range total.AllTransitions() {
		out.Add(t)
	}
	for s := automaton.State(0); s <= total.MaxState(); s++ {
		if !total.IsFinal(s) {
			out.SetFinal(s, true)
		}
	}
	return out
}
