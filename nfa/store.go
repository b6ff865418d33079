package nfa

import (
	"sort"

	"github.com/coregx/alang/automaton"
)

// transitionSet is a mutable dual-ordered transition store: two sorted
// slices of the same transitions, one in default order (From, Symbol, To),
// one in target order (To, Symbol, From). Maintaining both orders as
// sorted slices (rather than a balanced tree, which the Go standard
// library does not provide) gives O(log n) range-query endpoints via
// binary search at the cost of O(n) insertion, acceptable for the
// automaton sizes this library targets, and the same sorted-slice-plus-
// binary-search idiom used by the transition stores in this module's
// other automaton representations.
type transitionSet struct {
	byDefault []automaton.Transition
	byTarget  []automaton.Transition
}

func newTransitionSet() *transitionSet {
	return &transitionSet{}
}

// add inserts t into both orders. No-op if t is already present.
func (ts *transitionSet) add(t automaton.Transition) {
	i := sort.Search(len(ts.byDefault), func(i int) bool { return !ts.byDefault[i].Less(t) })
	if i < len(ts.byDefault) && ts.byDefault[i] == t {
		return
	}
	ts.byDefault = append(ts.byDefault, automaton.Transition{})
	copy(ts.byDefault[i+1:], ts.byDefault[i:])
	ts.byDefault[i] = t

	j := sort.Search(len(ts.byTarget), func(j int) bool { return !ts.byTarget[j].LessByTarget(t) })
	ts.byTarget = append(ts.byTarget, automaton.Transition{})
	copy(ts.byTarget[j+1:], ts.byTarget[j:])
	ts.byTarget[j] = t
}

// remove deletes t from both orders. No-op if absent.
func (ts *transitionSet) remove(t automaton.Transition) {
	i := sort.Search(len(ts.byDefault), func(i int) bool { return !ts.byDefault[i].Less(t) })
	if i < len(ts.byDefault) && ts.byDefault[i] == t {
		ts.byDefault = append(ts.byDefault[:i], ts.byDefault[i+1:]...)
	}
	j := sort.Search(len(ts.byTarget), func(j int) bool { return !ts.byTarget[j].LessByTarget(t) })
	if j < len(ts.byTarget) && ts.byTarget[j] == t {
		ts.byTarget = append(ts.byTarget[:j], ts.byTarget[j+1:]...)
	}
}

// len returns the total number of transitions.
func (ts *transitionSet) len() int {
	return len(ts.byDefault)
}

// from returns the range [lo,hi) of ts.byDefault holding all transitions
// whose From equals s: a binary-search bracket on state alone, with no
// narrowing by symbol.
func (ts *transitionSet) from(s automaton.State) []automaton.Transition {
	lo := sort.Search(len(ts.byDefault), func(i int) bool {
		return ts.byDefault[i].From >= s
	})
	hi := sort.Search(len(ts.byDefault), func(i int) bool {
		return ts.byDefault[i].From > s
	})
	return ts.byDefault[lo:hi]
}

// fromSymbol returns all transitions (s, sym, *) via binary search between
// MinTrans(s,sym) and MaxTrans(s,sym).
func (ts *transitionSet) fromSymbol(s automaton.State, sym automaton.Symbol) []automaton.Transition {
	min := automaton.MinTrans(s, sym)
	max := automaton.MaxTrans(s, sym)
	lo := sort.Search(len(ts.byDefault), func(i int) bool { return !ts.byDefault[i].Less(min) })
	hi := sort.Search(len(ts.byDefault), func(i int) bool { return max.Less(ts.byDefault[i]) })
	return ts.byDefault[lo:hi]
}

// to returns all transitions whose To equals s, via the target-ordered
// slice.
func (ts *transitionSet) to(s automaton.State) []automaton.Transition {
	lo := sort.Search(len(ts.byTarget), func(i int) bool {
		return ts.byTarget[i].To >= s
	})
	hi := sort.Search(len(ts.byTarget), func(i int) bool {
		return ts.byTarget[i].To > s
	})
	return ts.byTarget[lo:hi]
}

// all returns every transition in default order. The returned slice
// aliases internal storage and must not be mutated by the caller.
func (ts *transitionSet) all() []automaton.Transition {
	return ts.byDefault
}

// epsilonSet is the analogous store for epsilon transitions, keyed on
// (From, To) only (epsilon transitions carry no symbol).
type epsilonSet struct {
	byDefault []automaton.EpsilonTransition
}

func newEpsilonSet() *epsilonSet {
	return &epsilonSet{}
}

func (es *epsilonSet) add(e automaton.EpsilonTransition) {
	i := sort.Search(len(es.byDefault), func(i int) bool { return !es.byDefault[i].Less(e) })
	if i < len(es.byDefault) && es.byDefault[i] == e {
		return
	}
	es.byDefault = append(es.byDefault, automaton.EpsilonTransition{})
	copy(es.byDefault[i+1:], es.byDefault[i:])
	es.byDefault[i] = e
}

func (es *epsilonSet) len() int {
	return len(es.byDefault)
}

// from returns the epsilon transitions originating at s.
func (es *epsilonSet) from(s automaton.State) []automaton.EpsilonTransition {
	lo := sort.Search(len(es.byDefault), func(i int) bool { return es.byDefault[i].From >= s })
	hi := sort.Search(len(es.byDefault), func(i int) bool { return es.byDefault[i].From > s })
	return es.byDefault[lo:hi]
}

func (es *epsilonSet) all() []automaton.EpsilonTransition {
	return es.byDefault
}
