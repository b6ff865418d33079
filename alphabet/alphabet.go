// Package alphabet maps symbol strings to the non-negative integer indices
// that every automaton algorithm addresses symbols by.
//
// Two flavors are provided: Mutable, an append-only alphabet used while
// building and combining automata (getOrAdd never invalidates an existing
// index), and Canonical, a frozen alphabet whose symbols are sorted in
// byte-lexicographic order, used by mfa.MFA so that two automata accepting
// the same language serialize identically regardless of symbol insertion
// history.
//
// The split follows a common build-then-freeze pattern: a mutable
// accumulation structure that later freezes, on demand, into a structure
// optimized for lookup rather than for further growth.
package alphabet

import (
	"fmt"
	"sort"

	"github.com/coregx/alang/automaton"
)

// Mutable is an append-only symbol alphabet. Indices are assigned in
// insertion order and, once assigned, are never invalidated by later
// insertions: Mutable never removes, and indices stay stable once assigned.
type Mutable struct {
	symbols []string
	index   map[string]automaton.Symbol
}

// NewMutable creates an empty mutable alphabet.
func NewMutable() *Mutable {
	return &Mutable{index: make(map[string]automaton.Symbol)}
}

// Size returns the number of symbols currently in the alphabet.
func (a *Mutable) Size() int {
	return len(a.symbols)
}

// SymbolAt returns the symbol string at index i.
// Panics with OutOfRange-style message if i is not in [0, Size()).
func (a *Mutable) SymbolAt(i automaton.Symbol) string {
	if i < 0 || int(i) >= len(a.symbols) {
		panic(fmt.Sprintf("alphabet: index %d out of range [0,%d)", i, len(a.symbols)))
	}
	return a.symbols[i]
}

// IndexOf returns the index of s, or automaton.InvalidSymbol if absent.
func (a *Mutable) IndexOf(s string) automaton.Symbol {
	if idx, ok := a.index[s]; ok {
		return idx
	}
	return automaton.InvalidSymbol
}

// Contains reports whether s is already present in the alphabet.
func (a *Mutable) Contains(s string) bool {
	_, ok := a.index[s]
	return ok
}

// GetOrAdd returns the index of s, inserting it at Size() if absent.
func (a *Mutable) GetOrAdd(s string) automaton.Symbol {
	if idx, ok := a.index[s]; ok {
		return idx
	}
	idx := automaton.Symbol(len(a.symbols))
	a.symbols = append(a.symbols, s)
	a.index[s] = idx
	return idx
}

// AddAll inserts every symbol in ss that is not already present.
func (a *Mutable) AddAll(ss []string) {
	for _, s := range ss {
		a.GetOrAdd(s)
	}
}

// UnionWith merges other's symbols into a, returning a mapping from each
// index in other to the resulting index in a.
func (a *Mutable) UnionWith(other *Mutable) map[automaton.Symbol]automaton.Symbol {
	mapping := make(map[automaton.Symbol]automaton.Symbol, other.Size())
	for i, s := range other.symbols {
		mapping[automaton.Symbol(i)] = a.GetOrAdd(s)
	}
	return mapping
}

// Symbols returns the alphabet's symbols in index order. The returned
// slice is a copy and safe for the caller to retain.
func (a *Mutable) Symbols() []string {
	out := make([]string, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Canonicalize freezes a into a Canonical alphabet, sorting symbols
// byte-lexicographically.
func (a *Mutable) Canonicalize() *Canonical {
	return NewCanonical(a.symbols)
}

// Canonical is a frozen alphabet with symbols sorted in byte-lexicographic
// order at construction time. Two Canonical alphabets built from the same
// set of symbol strings are identical regardless of the order the strings
// were supplied in.
type Canonical struct {
	symbols []string
	index   map[string]automaton.Symbol
}

// NewCanonical builds a frozen alphabet from symbols, deduplicating and
// sorting them byte-lexicographically.
func NewCanonical(symbols []string) *Canonical {
	seen := make(map[string]bool, len(symbols))
	uniq := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if !seen[s] {
			seen[s] = true
			uniq = append(uniq, s)
		}
	}
	sort.Strings(uniq)

	index := make(map[string]automaton.Symbol, len(uniq))
	for i, s := range uniq {
		index[s] = automaton.Symbol(i)
	}
	return &Canonical{symbols: uniq, index: index}
}

// Size returns the number of symbols in the alphabet.
func (c *Canonical) Size() int {
	return len(c.symbols)
}

// SymbolAt returns the symbol string at index i.
// Panics if i is not in [0, Size()).
func (c *Canonical) SymbolAt(i automaton.Symbol) string {
	if i < 0 || int(i) >= len(c.symbols) {
		panic(fmt.Sprintf("alphabet: index %d out of range [0,%d)", i, len(c.symbols)))
	}
	return c.symbols[i]
}

// IndexOf returns the index of s, or automaton.InvalidSymbol if absent.
func (c *Canonical) IndexOf(s string) automaton.Symbol {
	if idx, ok := c.index[s]; ok {
		return idx
	}
	return automaton.InvalidSymbol
}

// Contains reports whether s is present in the alphabet.
func (c *Canonical) Contains(s string) bool {
	_, ok := c.index[s]
	return ok
}

// Symbols returns the alphabet's symbols in (sorted) index order. The
// returned slice is a copy and safe for the caller to retain.
func (c *Canonical) Symbols() []string {
	out := make([]string, len(c.symbols))
	copy(out, c.symbols)
	return out
}

// Equal reports whether c and other contain the same symbols in the same
// order.
func (c *Canonical) Equal(other *Canonical) bool {
	if len(c.symbols) != len(other.symbols) {
		return false
	}
	for i, s := range c.symbols {
		if other.symbols[i] != s {
			return false
		}
	}
	return true
}
