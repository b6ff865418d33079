package ops

import "github.com/coregx/alang/dfa"

// Minimize computes the minimal DFA equivalent to d using Brzozowski's
// algorithm: reverse, determinize, reverse, determinize again. This works
// even for non-minimal or non-trim input and never fails for a
// well-formed DFA.
func Minimize(d *dfa.DFA) *dfa.DFA {
	r1 := Reverse(d)
	d1 := Determinize(r1)
	r2 := Reverse(d1)
	return Determinize(r2)
}
