package mfa

import (
	"testing"

	"github.com/coregx/alang/alphabet"
	"github.com/coregx/alang/automaton"
	"github.com/coregx/alang/dfa"
	"github.com/coregx/alang/nfa"
	"github.com/coregx/alang/ops"
)

func literalNFA(word ...string) *nfa.NFA {
	alph := alphabet.NewMutable()
	n := nfa.New(alph)
	n.UnionWithSequence(word)
	return n
}

func buildAB() *dfa.DFA {
	alph := alphabet.NewMutable()
	d := dfa.New(alph)
	s0 := d.AllocState()
	s1 := d.AllocState()
	s2 := d.AllocState()
	d.SetInitialState(s0)
	d.SetFinal(s2, true)
	d.Add(automaton.Transition{From: s0, Symbol: alph.GetOrAdd("a"), To: s1})
	d.Add(automaton.Transition{From: s1, Symbol: alph.GetOrAdd("b"), To: s2})
	return d
}

func TestFromDFA_Basic(t *testing.T) {
	d := buildAB()
	m := FromDFA(d)

	if m.StateCount() != 3 {
		t.Fatalf("StateCount() = %d, want 3", m.StateCount())
	}
	if m.InitialState() != 0 {
		t.Errorf("InitialState() = %d, want 0", m.InitialState())
	}
	if !m.Accepts([]string{"a", "b"}) {
		t.Error("should accept [a,b]")
	}
	if m.Accepts([]string{"a"}) {
		t.Error("should reject [a] alone")
	}
}

func TestFromDFA_EmptyWhenNoFinals(t *testing.T) {
	alph := alphabet.NewMutable()
	d := dfa.New(alph)
	s0 := d.AllocState()
	d.SetInitialState(s0)

	m := FromDFA(d)
	if m.StateCount() != 0 {
		t.Errorf("StateCount() = %d, want 0 (empty language)", m.StateCount())
	}
	if m.Accepts(nil) {
		t.Error("empty-language MFA must reject epsilon too")
	}
}

func TestFromDFA_DropsUnreachableStates(t *testing.T) {
	alph := alphabet.NewMutable()
	d := dfa.New(alph)
	s0 := d.AllocState()
	s1 := d.AllocState()
	unreachable := d.AllocState()
	d.SetInitialState(s0)
	d.SetFinal(s1, true)
	d.SetFinal(unreachable, true)
	d.Add(automaton.Transition{From: s0, Symbol: alph.GetOrAdd("a"), To: s1})

	m := FromDFA(d)
	if m.StateCount() != 2 {
		t.Errorf("StateCount() = %d, want 2 (unreachable state dropped)", m.StateCount())
	}
}

func TestFromDFA_BFSCanonicalOrderBySymbolString(t *testing.T) {
	// s0 --"z"--> s1(final)
	// s0 --"a"--> s2(final)
	// BFS must visit "a" before "z" lexicographically, so s2 gets canonical
	// index 1 and s1 gets canonical index 2, regardless of alphabet
	// insertion order (z was inserted first).
	alph := alphabet.NewMutable()
	d := dfa.New(alph)
	s0 := d.AllocState()
	s1 := d.AllocState()
	s2 := d.AllocState()
	d.SetInitialState(s0)
	d.SetFinal(s1, true)
	d.SetFinal(s2, true)
	d.Add(automaton.Transition{From: s0, Symbol: alph.GetOrAdd("z"), To: s1})
	d.Add(automaton.Transition{From: s0, Symbol: alph.GetOrAdd("a"), To: s2})

	m := FromDFA(d)
	aTarget := m.Transition(0, m.Alphabet().IndexOf("a"))
	zTarget := m.Transition(0, m.Alphabet().IndexOf("z"))
	if aTarget != 1 {
		t.Errorf("state reached via 'a' should be canonical 1, got %d", aTarget)
	}
	if zTarget != 2 {
		t.Errorf("state reached via 'z' should be canonical 2, got %d", zTarget)
	}
}

func TestLanguageEqualIgnoresAlphabetIdentity(t *testing.T) {
	d1 := buildAB()
	m1 := FromDFA(d1)

	// Build an equivalent DFA whose alphabet was populated in a different
	// order (b before a): same language, different underlying alphabet
	// object.
	alph2 := alphabet.NewMutable()
	d2 := dfa.New(alph2)
	s0 := d2.AllocState()
	s1 := d2.AllocState()
	s2 := d2.AllocState()
	d2.SetInitialState(s0)
	d2.SetFinal(s2, true)
	alph2.GetOrAdd("b") // force different insertion order
	d2.Add(automaton.Transition{From: s0, Symbol: alph2.GetOrAdd("a"), To: s1})
	d2.Add(automaton.Transition{From: s1, Symbol: alph2.GetOrAdd("b"), To: s2})
	m2 := FromDFA(d2)

	if !m1.LanguageEqual(m2) {
		t.Error("MFAs accepting the same language should be LanguageEqual regardless of alphabet insertion order")
	}
}

func TestFromDFA_UnionCommutative(t *testing.T) {
	xy := FromDFA(ops.Minimize(ops.Determinize(ops.Union(literalNFA("x"), literalNFA("y")))))
	yx := FromDFA(ops.Minimize(ops.Determinize(ops.Union(literalNFA("y"), literalNFA("x")))))
	if !xy.LanguageEqual(yx) {
		t.Error("expected MFA(x|y) and MFA(y|x) to be the same canonical form")
	}
}

func TestStateView(t *testing.T) {
	d := buildAB()
	m := FromDFA(d)
	v := m.StateView(0)
	if v.Len() != 1 {
		t.Fatalf("StateView(0).Len() = %d, want 1", v.Len())
	}
	if v.Transition(m.Alphabet().IndexOf("a")) != 1 {
		t.Error("StateView.Transition(a) should reach state 1")
	}
	if v.Transition(automaton.Symbol(99)) != automaton.InvalidState {
		t.Error("StateView.Transition(missing) should be InvalidState")
	}
}

func TestString(t *testing.T) {
	d := buildAB()
	m := FromDFA(d)
	want := "S#=3, F#=1: [2], T#=2: [0→1 a, 1→2 b]"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestString_EmptyLanguage(t *testing.T) {
	m := Empty(alphabet.NewCanonical(nil))
	if got, want := m.String(), "S#=0, F#=0, T#=0"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
