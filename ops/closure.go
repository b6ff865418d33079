package ops

import (
	"github.com/coregx/alang/alphabet"
	"github.com/coregx/alang/automaton"
	"github.com/coregx/alang/nfa"
)

// Union returns the NFA accepting every string accepted by a or by b: a
// and b are copied, renumbered, into a fresh NFA via nfa.AppendCopy, and a
// new initial state is epsilon-linked to both operands' translated
// initial states.
func Union(a, b *nfa.NFA) *nfa.NFA {
	out := alphabet.NewMutable()
	symA := out.UnionWith(a.Alphabet())
	symB := out.UnionWith(b.Alphabet())
	result := nfa.New(out)

	_, initsA, finalsA := nfa.AppendCopy(result, a, symA)
	_, initsB, finalsB := nfa.AppendCopy(result, b, symB)

	s0 := result.AllocState()
	result.SetInitial(s0, true)
	for _, s := range initsA {
		result.AddEpsilon(automaton.EpsilonTransition{From: s0, To: s})
	}
	for _, s := range initsB {
		result.AddEpsilon(automaton.EpsilonTransition{From: s0, To: s})
	}
	for _, f := range finalsA {
		result.SetFinal(f, true)
	}
	for _, f := range finalsB {
		result.SetFinal(f, true)
	}
	return result
}

// Concatenate returns the NFA accepting every string formed by a string
// accepted by a followed by a string accepted by b. a's translated final
// states are epsilon-linked to b's translated initial states; the
// result's initial states are a's, and its final states are b's.
func Concatenate(a, b *nfa.NFA) *nfa.NFA {
	out := alphabet.NewMutable()
	symA := out.UnionWith(a.Alphabet())
	symB := out.UnionWith(b.Alphabet())
	result := nfa.New(out)

	_, initsA, finalsA := nfa.AppendCopy(result, a, symA)
	_, initsB, finalsB := nfa.AppendCopy(result, b, symB)

	for _, s := range initsA {
		result.SetInitial(s, true)
	}
	for _, f := range finalsA {
		for _, s := range initsB {
			result.AddEpsilon(automaton.EpsilonTransition{From: f, To: s})
		}
	}
	for _, f := range finalsB {
		result.SetFinal(f, true)
	}
	return result
}

// Option returns the NFA accepting everything n accepts plus the empty
// string: a fresh initial-and-final state is epsilon-linked to n's
// translated initial states, so the empty string is accepted directly and
// every other accepted run is unchanged. Note this copies into a fresh NFA
// rather than marking n's own initial states final in place; the languages
// are identical, and n stays untouched like the other operands in this
// package.
func Option(n *nfa.NFA) *nfa.NFA {
	out := alphabet.NewMutable()
	sym := out.UnionWith(n.Alphabet())
	result := nfa.New(out)

	_, inits, finals := nfa.AppendCopy(result, n, sym)

	s0 := result.AllocState()
	result.SetInitial(s0, true)
	result.SetFinal(s0, true)
	for _, s := range inits {
		result.AddEpsilon(automaton.EpsilonTransition{From: s0, To: s})
	}
	for _, f := range finals {
		result.SetFinal(f, true)
	}
	return result
}

// KleeneStar returns the NFA accepting zero or more repetitions of a string
// accepted by n: the classic Thompson construction, a fresh
// initial-and-final state s0 epsilon-links to n's initial states, and n's
// final states epsilon-link back to s0 to allow repetition.
func KleeneStar(n *nfa.NFA) *nfa.NFA {
	out := alphabet.NewMutable()
	sym := out.UnionWith(n.Alphabet())
	result := nfa.New(out)

	_, inits, finals := nfa.AppendCopy(result, n, sym)

	s0 := result.AllocState()
	result.SetInitial(s0, true)
	result.SetFinal(s0, true)
	for _, s := range inits {
		result.AddEpsilon(automaton.EpsilonTransition{From: s0, To: s})
	}
	for _, f := range finals {
		result.AddEpsilon(automaton.EpsilonTransition{From: f, To: s0})
	}
	return result
}

// KleenePlus returns the NFA accepting one or more repetitions of a string
// accepted by n, defined as n followed by zero-or-more n (n n*) rather
// than a bespoke construction, since that identity already holds and
// Concatenate/KleeneStar are both correct building blocks for it.
func KleenePlus(n *nfa.NFA) *nfa.NFA {
	return Concatenate(n, KleeneStar(n))
}
