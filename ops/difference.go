package ops

import (
	"github.com/coregx/alang/alphabet"
	"github.com/coregx/alang/automaton"
	"github.com/coregx/alang/dfa"
)

// remapAlphabet rebuilds d over alph, translating each transition's symbol
// through symMap (d's own symbol index -> alph's index) without renumbering
// any state. Used by Difference to give both operands a shared alphabet
// before complementing: Complement only totalizes over its operand's own
// alphabet (see DESIGN.md), so a symbol that only a's alphabet knows about
// would otherwise vanish from b's complement instead of being treated as
// something b rejects.
func remapAlphabet(d *dfa.DFA, alph *alphabet.Mutable, symMap map[automaton.Symbol]automaton.Symbol) *dfa.DFA {
	out := dfa.New(alph)
	if d.InitialState() != automaton.InvalidState {
		out.SetInitialState(d.InitialState())
	}
	for _, f := range d.FinalStates() {
		out.SetFinal(f, true)
	}
	for _, t := range d.AllTransitions() {
		out.Add(automaton.Transition{From: t.From, Symbol: symMap[t.Symbol], To: t.To})
	}
	return out
}

// Difference returns the DFA accepting strings accepted by a but not by b,
// computed as Intersect(a, Complement(b)) rather than by calling product
// directly with an asymmetric finality predicate: product's
// "skip the edge if b has no transition for this symbol" rule is only
// correct for Intersect, where a missing edge on either side correctly
// means rejection. For Difference, a missing edge in b must instead be
// followed into the complement's sink rather than cut off, which is exactly
// what Totalize+Complement provides. This composition also makes the
// A - B == A ∩ ¬B identity hold by construction rather than by coincidence.
//
// Before complementing, both operands are rebuilt over their merged
// alphabet so that a symbol only a knows about is treated, correctly, as
// something b rejects rather than as undefined and dropped.
func Difference(a, b *dfa.DFA) *dfa.DFA {
	merged := alphabet.NewMutable()
	mapA := merged.UnionWith(a.Alphabet())
	mapB := merged.UnionWith(b.Alphabet())

	aMerged := remapAlphabet(a, merged, mapA)
	bMerged := remapAlphabet(b, merged, mapB)

	return Intersect(aMerged, Complement(bMerged))
}
