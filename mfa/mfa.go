// Package mfa implements a canonical minimal automaton: an immutable,
// minimal, deterministic automaton whose states are numbered by
// breadth-first traversal in symbol-lexicographic order from state 0. Two
// MFAs accept the same language iff their transition arrays and final
// state arrays are byte-identical.
//
// The representation is a fully immutable structure built once from a
// (minimized) mutable DFA and never mutated thereafter, stored as a flat
// sorted array rather than a live transition map. StateView looks up a
// transition with a single binary search over that sorted slice.
package mfa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/coregx/alang/alphabet"
	"github.com/coregx/alang/automaton"
	"github.com/coregx/alang/dfa"
)

// MFA is an immutable, minimal, canonically-numbered deterministic
// automaton. States are [0, StateCount); the initial state is 0 if
// StateCount > 0, else automaton.InvalidState.
type MFA struct {
	alph   *alphabet.Canonical
	trans  []automaton.Transition // sorted by (From, Symbol, To); deterministic
	finals []automaton.State      // sorted ascending
	states int
}

// Empty returns the zero-state MFA: the empty language, which accepts
// nothing, not even epsilon.
func Empty(alph *alphabet.Canonical) *MFA {
	return &MFA{alph: alph}
}

// Alphabet returns the MFA's canonical alphabet.
func (m *MFA) Alphabet() *alphabet.Canonical {
	return m.alph
}

// StateCount returns the number of states, [0, StateCount).
func (m *MFA) StateCount() int {
	return m.states
}

// InitialState returns 0 if the MFA is non-empty, else automaton.InvalidState.
func (m *MFA) InitialState() automaton.State {
	if m.states == 0 {
		return automaton.InvalidState
	}
	return 0
}

// IsFinal reports whether s is a final state.
func (m *MFA) IsFinal(s automaton.State) bool {
	i := sort.Search(len(m.finals), func(i int) bool { return m.finals[i] >= s })
	return i < len(m.finals) && m.finals[i] == s
}

// FinalStates returns the sorted final states. The returned slice aliases
// internal storage and must not be mutated.
func (m *MFA) FinalStates() []automaton.State {
	return m.finals
}

// AllTransitions returns every transition in default sorted order. The
// returned slice aliases internal storage and must not be mutated.
func (m *MFA) AllTransitions() []automaton.Transition {
	return m.trans
}

// StateView returns a zero-copy view over the sorted transitions
// originating at s.
func (m *MFA) StateView(s automaton.State) StateView {
	lo := sort.Search(len(m.trans), func(i int) bool { return m.trans[i].From >= s })
	hi := sort.Search(len(m.trans), func(i int) bool { return m.trans[i].From > s })
	return StateView{from: s, slice: m.trans[lo:hi]}
}

// Transition returns the target of (s, sym), or automaton.InvalidState if
// none exists. Equivalent to m.StateView(s).Transition(sym) but avoids
// constructing the intermediate StateView.
func (m *MFA) Transition(s automaton.State, sym automaton.Symbol) automaton.State {
	lo := sort.Search(len(m.trans), func(i int) bool {
		return !m.trans[i].Less(automaton.MinTrans(s, sym))
	})
	if lo < len(m.trans) && m.trans[lo].From == s && m.trans[lo].Symbol == sym {
		return m.trans[lo].To
	}
	return automaton.InvalidState
}

// Accepts runs input against the MFA exactly as dfa.DFA.Accepts does.
func (m *MFA) Accepts(input []string) bool {
	s := m.InitialState()
	if s == automaton.InvalidState {
		return false
	}
	for _, sym := range input {
		idx := m.alph.IndexOf(sym)
		if idx == automaton.InvalidSymbol {
			return false
		}
		s = m.Transition(s, idx)
		if s == automaton.InvalidState {
			return false
		}
	}
	return m.IsFinal(s)
}

// StateView is a zero-copy slice over the sorted transitions of one source
// state. Transition performs a single binary search within the slice.
type StateView struct {
	from  automaton.State
	slice []automaton.Transition
}

// Len returns the number of outgoing transitions in the view.
func (v StateView) Len() int { return len(v.slice) }

// At returns the i-th transition in the view.
func (v StateView) At(i int) automaton.Transition { return v.slice[i] }

// Transition returns the target for sym within this view, or
// automaton.InvalidState if absent.
func (v StateView) Transition(sym automaton.Symbol) automaton.State {
	i := sort.Search(len(v.slice), func(i int) bool { return v.slice[i].Symbol >= sym })
	if i < len(v.slice) && v.slice[i].Symbol == sym {
		return v.slice[i].To
	}
	return automaton.InvalidState
}

// FromDFA builds the canonical MFA for the language accepted by d,
// which must already be deterministic and minimal (the caller applies
// ops.Minimize first; FromDFA itself performs no minimization, only
// canonicalization). If d has no final states, the result is Empty.
//
// Canonical numbering: BFS from d's initial state, visiting outgoing
// transitions in lexicographic order of the symbol *string* (not symbol
// index, which depends on alphabet insertion order).
func FromDFA(d *dfa.DFA) *MFA {
	if len(d.FinalStates()) == 0 || d.InitialState() == automaton.InvalidState {
		return Empty(alphabet.NewCanonical(d.Alphabet().Symbols()))
	}

	srcAlph := d.Alphabet()
	canon := alphabet.NewCanonical(srcAlph.Symbols())

	canonOf := make(map[automaton.State]automaton.State)
	canonOf[d.InitialState()] = 0
	order := []automaton.State{d.InitialState()}
	queue := []automaton.State{d.InitialState()}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		outs := append([]automaton.Transition(nil), d.TransitionsFrom(s)...)
		sort.Slice(outs, func(i, j int) bool {
			return srcAlph.SymbolAt(outs[i].Symbol) < srcAlph.SymbolAt(outs[j].Symbol)
		})
		for _, t := range outs {
			if _, seen := canonOf[t.To]; !seen {
				canonOf[t.To] = automaton.State(len(order))
				order = append(order, t.To)
				queue = append(queue, t.To)
			}
		}
	}

	trans := make([]automaton.Transition, 0, len(d.AllTransitions()))
	for _, t := range d.AllTransitions() {
		from, okFrom := canonOf[t.From]
		to, okTo := canonOf[t.To]
		if !okFrom || !okTo {
			continue // unreachable from the initial state; dropped, as BFS never visits it
		}
		sym := canon.IndexOf(srcAlph.SymbolAt(t.Symbol))
		trans = append(trans, automaton.Transition{From: from, Symbol: sym, To: to})
	}
	sort.Slice(trans, func(i, j int) bool { return trans[i].Less(trans[j]) })

	var finals []automaton.State
	for _, f := range d.FinalStates() {
		if cs, ok := canonOf[f]; ok {
			finals = append(finals, cs)
		}
	}
	sort.Slice(finals, func(i, j int) bool { return finals[i] < finals[j] })

	return &MFA{alph: canon, trans: trans, finals: finals, states: len(order)}
}

// LanguageEqual reports whether m and other accept the same language:
// their transition arrays and final-state arrays are pairwise equal, and
// for every symbol index mentioned, both alphabets yield the same symbol
// string. The alphabets need not be equal as objects.
func (m *MFA) LanguageEqual(other *MFA) bool {
	if m.states != other.states || len(m.finals) != len(other.finals) || len(m.trans) != len(other.trans) {
		return false
	}
	for i := range m.finals {
		if m.finals[i] != other.finals[i] {
			return false
		}
	}
	for i := range m.trans {
		a, b := m.trans[i], other.trans[i]
		if a.From != b.From || a.To != b.To {
			return false
		}
		if m.alph.SymbolAt(a.Symbol) != other.alph.SymbolAt(b.Symbol) {
			return false
		}
	}
	return true
}

// StrictEqual reports LanguageEqual(other) and additionally requires the
// two alphabets to be equal as objects (same symbols, same order).
func (m *MFA) StrictEqual(other *MFA) bool {
	return m.alph.Equal(other.alph) && m.LanguageEqual(other)
}

// String renders a canonical debug form:
//
//	S#=<stateCount>, F#=<finalCount>[: [f0, f1, ...]], T#=<transCount>[: [from→to sym, ...]]
func (m *MFA) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "S#=%d, F#=%d", m.states, len(m.finals))
	if len(m.finals) > 0 {
		b.WriteString(": [")
		for i, f := range m.finals {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d", f)
		}
		b.WriteString("]")
	}
	fmt.Fprintf(&b, ", T#=%d", len(m.trans))
	if len(m.trans) > 0 {
		b.WriteString(": [")
		for i, t := range m.trans {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d→%d %s", t.From, t.To, m.alph.SymbolAt(t.Symbol))
		}
		b.WriteString("]")
	}
	return b.String()
}
