package ops

import (
	"github.com/coregx/alang/alphabet"
	"github.com/coregx/alang/automaton"
	"github.com/coregx/alang/nfa"
)

// literalNFA builds an NFA accepting exactly the single sequence of symbol
// strings in word, sharing a fresh alphabet.
func literalNFA(word ...string) *nfa.NFA {
	alph := alphabet.NewMutable()
	n := nfa.New(alph)
	n.UnionWithSequence(word)
	return n
}

// emptyLangNFA builds an NFA accepting nothing: a single, non-final initial
// state with no way out.
func emptyLangNFA() *nfa.NFA {
	alph := alphabet.NewMutable()
	n := nfa.New(alph)
	s := n.AllocState()
	n.SetInitial(s, true)
	return n
}

func sym(alph *alphabet.Mutable, s string) automaton.Symbol {
	return alph.GetOrAdd(s)
}
