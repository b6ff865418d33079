package nfa

import "github.com/coregx/alang/automaton"

// AppendCopy copies every symbolic and epsilon transition of src into dst,
// shifting every state number by a fresh offset so the copy cannot collide
// with any state dst already owns.
//
// symMap translates a symbol index in src's alphabet to the corresponding
// index in dst's alphabet; pass nil when src and dst already share an
// alphabet (the identity mapping).
//
// AppendCopy does not mark any state initial or final in dst; it only
// copies structure. It returns the offset applied, plus src's initial and
// final state sets translated into dst's numbering, so the caller (a
// closure operation in package ops) can decide exactly which states to
// mark initial/final per the operation's own rules (union marks both
// operands' translated finals as final; concatenation does not, etc).
func AppendCopy(dst, src *NFA, symMap map[automaton.Symbol]automaton.Symbol) (offset automaton.State, initials, finals []automaton.State) {
	offset = dst.maxState + 1

	for _, t := range src.trans.all() {
		sym := t.Symbol
		if symMap != nil {
			sym = symMap[sym]
		}
		dst.AddTransition(automaton.Transition{From: t.From + offset, Symbol: sym, To: t.To + offset})
	}
	for _, e := range src.eps.all() {
		dst.AddEpsilon(automaton.EpsilonTransition{From: e.From + offset, To: e.To + offset})
	}

	// A source state might own no transitions at all (e.g. a single-state
	// NFA); touch it directly so dst.maxState accounts for it.
	for _, s := range src.InitialStates() {
		dst.touch(s + offset)
		initials = append(initials, s+offset)
	}
	for _, s := range src.FinalStates() {
		dst.touch(s + offset)
		finals = append(finals, s+offset)
	}
	return offset, initials, finals
}
