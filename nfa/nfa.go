// Package nfa implements a mutable nondeterministic finite automaton:
// symbolic and epsilon transitions, epsilon closure, reachability, and the
// incremental mutation primitives the compiler and the closure operations
// in package ops build on.
//
// The design uses an incremental builder API (monotonically-growing state
// IDs, one Add* method per transition shape) with a single state shape: a
// set of labeled outgoing transitions plus epsilon transitions. Symbols
// here are opaque string tokens rather than byte ranges, so there is no
// need for a tagged union of byte-range/split/capture/look states.
package nfa

import (
	"fmt"
	"sort"

	"github.com/coregx/alang/alphabet"
	"github.com/coregx/alang/automaton"
	"github.com/coregx/alang/internal/conv"
	"github.com/coregx/alang/internal/sparse"
)

// NFA is a mutable nondeterministic automaton. It owns a reference to a
// mutable alphabet (shared with other automata is safe: appends never
// invalidate existing indices), a set of symbolic transitions, a set of
// epsilon transitions, a set of initial states, a set of final states, and
// an upper bound MaxState such that MaxState+1 is guaranteed unused.
type NFA struct {
	alph     *alphabet.Mutable
	trans    *transitionSet
	eps      *epsilonSet
	initial  map[automaton.State]bool
	final    map[automaton.State]bool
	maxState automaton.State // highest state number ever mentioned, or -1 if none
}

// New creates an empty NFA over alph. alph may be shared with other
// automata; the NFA never removes symbols from it, only appends via
// alph.GetOrAdd.
func New(alph *alphabet.Mutable) *NFA {
	return &NFA{
		alph:     alph,
		trans:    newTransitionSet(),
		eps:      newEpsilonSet(),
		initial:  make(map[automaton.State]bool),
		final:    make(map[automaton.State]bool),
		maxState: -1,
	}
}

// Alphabet returns the NFA's alphabet.
func (n *NFA) Alphabet() *alphabet.Mutable {
	return n.alph
}

// MaxState returns the NFA's current upper bound; MaxState()+1 is
// guaranteed to name an unused state.
func (n *NFA) MaxState() automaton.State {
	return n.maxState
}

// AllocState reserves and returns a fresh, never-before-used state number.
func (n *NFA) AllocState() automaton.State {
	n.maxState++
	return n.maxState
}

func (n *NFA) touch(s automaton.State) {
	conv.NonNegative(int(s), "state")
	if s > n.maxState {
		n.maxState = s
	}
}

// AddTransition inserts t, updating MaxState. Panics if the symbol is
// negative; callers are expected to validate input before this layer.
func (n *NFA) AddTransition(t automaton.Transition) {
	n.touch(t.From)
	n.touch(t.To)
	conv.NonNegative(int(t.Symbol), "symbol")
	n.trans.add(t)
}

// AddEpsilon inserts e, updating MaxState.
func (n *NFA) AddEpsilon(e automaton.EpsilonTransition) {
	n.touch(e.From)
	n.touch(e.To)
	n.eps.add(e)
}

// SetInitial marks or unmarks s as an initial state.
func (n *NFA) SetInitial(s automaton.State, isInitial bool) {
	n.touch(s)
	if isInitial {
		n.initial[s] = true
	} else {
		delete(n.initial, s)
	}
}

// SetFinal marks or unmarks s as a final state.
func (n *NFA) SetFinal(s automaton.State, isFinal bool) {
	n.touch(s)
	if isFinal {
		n.final[s] = true
	} else {
		delete(n.final, s)
	}
}

// IsInitial reports whether s is an initial state.
func (n *NFA) IsInitial(s automaton.State) bool {
	return n.initial[s]
}

// IsFinal reports whether s is a final state.
func (n *NFA) IsFinal(s automaton.State) bool {
	return n.final[s]
}

// InitialStates returns the initial states in ascending order.
func (n *NFA) InitialStates() []automaton.State {
	return sortedKeys(n.initial)
}

// FinalStates returns the final states in ascending order.
func (n *NFA) FinalStates() []automaton.State {
	return sortedKeys(n.final)
}

func sortedKeys(m map[automaton.State]bool) []automaton.State {
	out := make([]automaton.State, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// TransitionsFrom returns every symbolic transition whose From is s, in
// default order.
func (n *NFA) TransitionsFrom(s automaton.State) []automaton.Transition {
	return n.trans.from(s)
}

// TransitionsTo returns every symbolic transition whose To is s, in
// (To, Symbol, From) order, via the store's target-ordered index. Used
// for predecessor enumeration.
func (n *NFA) TransitionsTo(s automaton.State) []automaton.Transition {
	return n.trans.to(s)
}

// TransitionsFromSymbol returns every transition (s, sym, *).
func (n *NFA) TransitionsFromSymbol(s automaton.State, sym automaton.Symbol) []automaton.Transition {
	return n.trans.fromSymbol(s, sym)
}

// ReachableOnSymbol returns the set of target states over (s, sym, *).
func (n *NFA) ReachableOnSymbol(s automaton.State, sym automaton.Symbol) []automaton.State {
	ts := n.trans.fromSymbol(s, sym)
	out := make([]automaton.State, len(ts))
	for i, t := range ts {
		out[i] = t.To
	}
	return out
}

// EpsilonReach returns the states one epsilon-step reachable from s.
func (n *NFA) EpsilonReach(s automaton.State) []automaton.State {
	es := n.eps.from(s)
	out := make([]automaton.State, len(es))
	for i, e := range es {
		out[i] = e.To
	}
	return out
}

// EpsilonClosureInPlace expands set to its epsilon closure using a
// worklist. If s has an epsilon self-loop, s remains included: the closure
// is computed over a fixed point, not a DAG traversal that could drop
// cycle members.
func (n *NFA) EpsilonClosureInPlace(set *sparse.IntSet) {
	worklist := append([]int(nil), set.Values()...)
	for len(worklist) > 0 {
		s := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, next := range n.EpsilonReach(automaton.State(s)) {
			if set.Insert(int(next)) {
				worklist = append(worklist, int(next))
			}
		}
	}
}

// Closure returns the epsilon closure of states as a sorted slice, without
// mutating the caller's data.
func (n *NFA) Closure(states []automaton.State) []automaton.State {
	return n.closureOf(states)
}

// closureOf returns the epsilon closure of states as a sorted slice,
// without mutating the caller's data.
func (n *NFA) closureOf(states []automaton.State) []automaton.State {
	set := sparse.NewIntSet(int(n.maxState) + 2)
	for _, s := range states {
		set.Insert(int(s))
	}
	n.EpsilonClosureInPlace(set)
	out := make([]automaton.State, 0, set.Len())
	for _, v := range set.Values() {
		out = append(out, automaton.State(v))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Reachable computes the epsilon closure of fromStates, steps on sym via
// symbolic transitions, then epsilon-closes the result. Used by subset
// construction.
func (n *NFA) Reachable(fromStates []automaton.State, sym automaton.Symbol) []automaton.State {
	closed := n.closureOf(fromStates)
	set := sparse.NewIntSet(int(n.maxState) + 2)
	for _, s := range closed {
		for _, t := range n.ReachableOnSymbol(s, sym) {
			set.Insert(int(t))
		}
	}
	n.EpsilonClosureInPlace(set)
	out := make([]automaton.State, 0, set.Len())
	for _, v := range set.Values() {
		out = append(out, automaton.State(v))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AvailableSymbols returns the sorted, deduplicated union of symbols on
// outgoing symbolic transitions from any state in fromStates.
func (n *NFA) AvailableSymbols(fromStates []automaton.State) []automaton.Symbol {
	seen := make(map[automaton.Symbol]bool)
	for _, s := range fromStates {
		for _, t := range n.TransitionsFrom(s) {
			seen[t.Symbol] = true
		}
	}
	out := make([]automaton.Symbol, 0, len(seen))
	for sym := range seen {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AcceptsEpsilon reports whether any initial state reaches a final state
// under epsilon closure alone, i.e. whether the empty string is accepted.
func (n *NFA) AcceptsEpsilon() bool {
	closed := n.closureOf(n.InitialStates())
	for _, s := range closed {
		if n.IsFinal(s) {
			return true
		}
	}
	return false
}

// UnionWithSequence allocates a fresh initial state, walks seq allocating
// a fresh state per symbol (resolved via alph.GetOrAdd), and marks the
// final state of the chain final. The fresh initial is added to the NFA's
// set of initial states. Returns the new initial state.
func (n *NFA) UnionWithSequence(seq []string) automaton.State {
	start := n.AllocState()
	n.SetInitial(start, true)

	cur := start
	for _, sym := range seq {
		next := n.AllocState()
		n.AddTransition(automaton.Transition{From: cur, Symbol: n.alph.GetOrAdd(sym), To: next})
		cur = next
	}
	n.SetFinal(cur, true)
	return start
}

// Iter returns an iterator over the NFA's state numbers, 0 through
// MaxState in ascending order.
func (n *NFA) Iter() *StateIter {
	return &StateIter{nfa: n, pos: 0}
}

// StateIter is an iterator over NFA states.
type StateIter struct {
	nfa *NFA
	pos int
}

// Next returns the next state in the iteration.
// Returns automaton.InvalidState when iteration is complete.
func (it *StateIter) Next() automaton.State {
	if !it.HasNext() {
		return automaton.InvalidState
	}
	s := automaton.State(it.pos)
	it.pos++
	return s
}

// HasNext returns true if there are more states to iterate.
func (it *StateIter) HasNext() bool {
	return automaton.State(it.pos) <= it.nfa.maxState
}

// String renders a compact debug summary of the NFA.
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states<=%d, initial=%v, final=%v, trans=%d, eps=%d}",
		n.maxState+1, n.InitialStates(), n.FinalStates(), n.trans.len(), n.eps.len())
}
