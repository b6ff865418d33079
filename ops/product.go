package ops

import (
	"github.com/coregx/alang/automaton"
	"github.com/coregx/alang/dfa"
)

// pairKey packs two int32-range state indices into one int64 so a pair of
// states can key a map without allocating a struct key.
func pairKey(a, b automaton.State) int64 {
	return int64(a)<<32 | int64(uint32(b))
}

// product is the shared work-queue state-pairing construction behind both
// Intersect and Difference: it combines two automata by synchronized
// traversal. For each outgoing symbol of qA, the symbol is translated by
// its string to qB's alphabet; if qB has no such symbol, or has no
// transition on it, the edge is skipped, which is the correct semantics
// for Intersect (an input rejected by either side is rejected by the
// intersection) but not, on its own, for Difference (see difference.go,
// which composes Complement+product instead of calling product directly
// with asymmetric finality).
func product(a, b *dfa.DFA, final func(aFinal, bFinal bool) bool) *dfa.DFA {
	out := dfa.New(a.Alphabet())
	if a.InitialState() == automaton.InvalidState || b.InitialState() == automaton.InvalidState {
		return out // empty-language operand: product is empty
	}

	type pair struct{ qa, qb automaton.State }
	stateOf := make(map[int64]automaton.State)

	start := pair{a.InitialState(), b.InitialState()}
	s0 := out.AllocState()
	stateOf[pairKey(start.qa, start.qb)] = s0
	out.SetInitialState(s0)
	if final(a.IsFinal(start.qa), b.IsFinal(start.qb)) {
		out.SetFinal(s0, true)
	}

	queue := []pair{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curState := stateOf[pairKey(cur.qa, cur.qb)]

		for _, t := range a.TransitionsFrom(cur.qa) {
			symStr := a.Alphabet().SymbolAt(t.Symbol)
			bSym := b.Alphabet().IndexOf(symStr)
			if bSym == automaton.InvalidSymbol {
				continue
			}
			bTo := b.Transition(cur.qb, bSym)
			if bTo == automaton.InvalidState {
				continue
			}
			next := pair{t.To, bTo}
			k := pairKey(next.qa, next.qb)
			ns, known := stateOf[k]
			if !known {
				ns = out.AllocState()
				stateOf[k] = ns
				if final(a.IsFinal(next.qa), b.IsFinal(next.qb)) {
					out.SetFinal(ns, true)
				}
				queue = append(queue, next)
			}
			out.Add(automaton.Transition{From: curState, Symbol: t.Symbol, To: ns})
		}
	}
	return out
}

// Intersect returns the DFA accepting strings accepted by both a and b.
// Never fails; returns an empty-language DFA if either operand is empty or
// the languages share nothing.
func Intersect(a, b *dfa.DFA) *dfa.DFA {
	return product(a, b, func(fa, fb bool) bool { return fa && fb })
}
