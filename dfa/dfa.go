// Package dfa implements a mutable deterministic finite automaton: a
// transition store keyed by (fromState, symbol) with at most one target
// per key, a single initial state, a set of final states, and the
// determinism-preserving Add used by determinization (package ops) to
// build a DFA out of subset-construction results.
//
// Transition looks up the target of a (state, symbol index) pair and
// returns automaton.InvalidState when no transition exists.
// Storage is a sorted slice searched by binary search rather than a
// per-state map, so that TransitionsFrom can return an ordered, zero-copy
// view over the same layout package mfa's conversion step reuses, without
// needing a second representation.
package dfa

import (
	"fmt"
	"sort"

	"github.com/coregx/alang/alphabet"
	"github.com/coregx/alang/automaton"
	"github.com/coregx/alang/internal/conv"
)

// DFA is a mutable deterministic automaton: for every (fromState, symbol)
// at most one outgoing transition exists.
type DFA struct {
	alph     *alphabet.Mutable
	trans    []automaton.Transition // sorted by (From, Symbol, To); at most one per (From,Symbol)
	initial  automaton.State        // automaton.InvalidState if none
	final    map[automaton.State]bool
	maxState automaton.State
}

// New creates an empty DFA over alph with no initial state.
func New(alph *alphabet.Mutable) *DFA {
	return &DFA{
		alph:     alph,
		initial:  automaton.InvalidState,
		final:    make(map[automaton.State]bool),
		maxState: -1,
	}
}

// Alphabet returns the DFA's alphabet.
func (d *DFA) Alphabet() *alphabet.Mutable {
	return d.alph
}

// MaxState returns the current upper bound on state numbers mentioned.
func (d *DFA) MaxState() automaton.State {
	return d.maxState
}

// InitialState returns the sole initial state, or automaton.InvalidState
// if none has been set.
func (d *DFA) InitialState() automaton.State {
	return d.initial
}

// SetInitialState sets the sole initial state. Passing automaton.InvalidState
// clears it.
func (d *DFA) SetInitialState(s automaton.State) {
	if s != automaton.InvalidState {
		d.touch(s)
	}
	d.initial = s
}

// SetFinal marks or unmarks s as a final state.
func (d *DFA) SetFinal(s automaton.State, isFinal bool) {
	d.touch(s)
	if isFinal {
		d.final[s] = true
	} else {
		delete(d.final, s)
	}
}

// IsFinal reports whether s is a final state.
func (d *DFA) IsFinal(s automaton.State) bool {
	return d.final[s]
}

// FinalStates returns the final states in ascending order.
func (d *DFA) FinalStates() []automaton.State {
	out := make([]automaton.State, 0, len(d.final))
	for s := range d.final {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AllocState reserves and returns a fresh, never-before-used state number.
func (d *DFA) AllocState() automaton.State {
	d.maxState++
	return d.maxState
}

func (d *DFA) touch(s automaton.State) {
	conv.NonNegative(int(s), "state")
	if s > d.maxState {
		d.maxState = s
	}
}

// Add inserts t, preserving the determinism invariant: if a transition
// already exists for (t.From, t.Symbol), Add is a no-op and returns
// false; the existing transition wins. Otherwise it inserts t and
// returns true.
func (d *DFA) Add(t automaton.Transition) bool {
	conv.NonNegative(int(t.From), "from")
	conv.NonNegative(int(t.Symbol), "symbol")
	conv.NonNegative(int(t.To), "to")
	i, found := d.search(t.From, t.Symbol)
	if found {
		return false
	}
	d.touch(t.From)
	d.touch(t.To)
	d.trans = append(d.trans, automaton.Transition{})
	copy(d.trans[i+1:], d.trans[i:])
	d.trans[i] = t
	return true
}

// search returns the insertion point for (from,sym) in d.trans and whether
// a transition for that key already exists.
func (d *DFA) search(from automaton.State, sym automaton.Symbol) (int, bool) {
	min := automaton.MinTrans(from, sym)
	i := sort.Search(len(d.trans), func(i int) bool { return !d.trans[i].Less(min) })
	if i < len(d.trans) && d.trans[i].From == from && d.trans[i].Symbol == sym {
		return i, true
	}
	return i, false
}

// Transition returns the target of (s, sym), or automaton.InvalidState if
// none exists.
func (d *DFA) Transition(s automaton.State, sym automaton.Symbol) automaton.State {
	if i, found := d.search(s, sym); found {
		return d.trans[i].To
	}
	return automaton.InvalidState
}

// TransitionsFrom returns every transition whose From is s, in symbol
// order. The returned slice aliases internal storage.
func (d *DFA) TransitionsFrom(s automaton.State) []automaton.Transition {
	lo := sort.Search(len(d.trans), func(i int) bool { return d.trans[i].From >= s })
	hi := sort.Search(len(d.trans), func(i int) bool { return d.trans[i].From > s })
	return d.trans[lo:hi]
}

// AllTransitions returns every transition in default order. The returned
// slice aliases internal storage and must not be mutated.
func (d *DFA) AllTransitions() []automaton.Transition {
	return d.trans
}

// Accepts runs input (a sequence of symbol strings) from InitialState,
// rejecting immediately on an unknown symbol or a missing transition.
func (d *DFA) Accepts(input []string) bool {
	s := d.initial
	if s == automaton.InvalidState {
		return false
	}
	for _, sym := range input {
		idx := d.alph.IndexOf(sym)
		if idx == automaton.InvalidSymbol {
			return false
		}
		s = d.Transition(s, idx)
		if s == automaton.InvalidState {
			return false
		}
	}
	return d.IsFinal(s)
}

// StatePath runs input as Accepts does but returns the sequence of states
// visited, starting with InitialState. The returned slice is truncated
// (shorter than len(input)+1) if the run is rejected partway through.
func (d *DFA) StatePath(input []string) []automaton.State {
	s := d.initial
	if s == automaton.InvalidState {
		return nil
	}
	path := []automaton.State{s}
	for _, sym := range input {
		idx := d.alph.IndexOf(sym)
		if idx == automaton.InvalidSymbol {
			return path
		}
		s = d.Transition(s, idx)
		if s == automaton.InvalidState {
			return path
		}
		path = append(path, s)
	}
	return path
}

// String renders a compact debug summary of the DFA.
func (d *DFA) String() string {
	return fmt.Sprintf("DFA{states<=%d, initial=%d, final=%v, trans=%d}",
		d.maxState+1, d.initial, d.FinalStates(), len(d.trans))
}
