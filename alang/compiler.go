package alang

import (
	"fmt"

	"github.com/coregx/alang/alphabet"
	"github.com/coregx/alang/automaton"
	"github.com/coregx/alang/dfa"
	"github.com/coregx/alang/mfa"
	"github.com/coregx/alang/nfa"
	"github.com/coregx/alang/ops"
)

// Limits bounds the size of automata a compile is allowed to produce,
// turning the informal cost bound of a compile into a contract the caller
// can tune.
type Limits struct {
	// MaxStates is the largest state count any MFA produced during a
	// compile may have. Zero means unlimited.
	// Default: 10000
	MaxStates int

	// MaxRecursionDepth limits recursion during parsing and during the
	// compiler's structural recursion. Exceeding it surfaces as an
	// ExpressionTooDeep parse error or a RecursionLimitExceeded compile
	// error rather than exhausting the stack. Zero means unlimited.
	// Default: 1000
	MaxRecursionDepth int

	// MaxExpressionLength caps the input length in bytes Parse accepts.
	// Zero means unlimited.
	// Default: 100000
	MaxExpressionLength int
}

// DefaultLimits returns the default Limits: generous enough for ordinary
// patterns, small enough to catch runaway or adversarial expressions.
func DefaultLimits() Limits {
	return Limits{
		MaxStates:           10_000,
		MaxRecursionDepth:   1000,
		MaxExpressionLength: 100_000,
	}
}

// compileExpr is the structural recursion at the heart of compilation: each
// case compiles its children, coerces them to whichever representation the
// closure operation it needs expects, applies the operation, then coerces
// the result back to MFA. alph is the single mutable alphabet shared by the
// whole compile, so a Wildcard or Complement resolves against exactly the
// symbols discovered so far in the structural recursion. depth counts
// activations so a pathologically deep tree handed to CompileExpr fails
// with a structured error instead of exhausting the stack.
func compileExpr(e Expr, alph *alphabet.Mutable, limits Limits, depth int) (*mfa.MFA, error) {
	if limits.MaxRecursionDepth > 0 && depth > limits.MaxRecursionDepth {
		return nil, &CompileError{
			Kind:    RecursionLimitExceeded,
			Message: fmt.Sprintf("expression tree nests deeper than limit %d", limits.MaxRecursionDepth),
		}
	}

	switch v := e.(type) {
	case *Symbol:
		d := dfa.New(alph)
		s0 := d.AllocState()
		s1 := d.AllocState()
		d.SetInitialState(s0)
		d.SetFinal(s1, true)
		d.Add(automaton.Transition{From: s0, Symbol: alph.GetOrAdd(v.Name), To: s1})
		return toMFA(d, limits)

	case *Wildcard:
		snapshot := alph.Symbols()
		d := dfa.New(alph)
		s0 := d.AllocState()
		s1 := d.AllocState()
		d.SetInitialState(s0)
		d.SetFinal(s1, true)
		for _, s := range snapshot {
			d.Add(automaton.Transition{From: s0, Symbol: alph.GetOrAdd(s), To: s1})
		}
		return toMFA(d, limits)

	case *EmptyLang:
		return mfa.Empty(alphabet.NewCanonical(alph.Symbols())), nil

	case *Union:
		lm, err := compileExpr(v.Left, alph, limits, depth+1)
		if err != nil {
			return nil, err
		}
		rm, err := compileExpr(v.Right, alph, limits, depth+1)
		if err != nil {
			return nil, err
		}
		u := ops.Union(mfaToNFA(lm, alph), mfaToNFA(rm, alph))
		return toMFA(ops.Determinize(u), limits)

	case *Concatenation:
		lm, err := compileExpr(v.Left, alph, limits, depth+1)
		if err != nil {
			return nil, err
		}
		rm, err := compileExpr(v.Right, alph, limits, depth+1)
		if err != nil {
			return nil, err
		}
		cat := ops.Concatenate(mfaToNFA(lm, alph), mfaToNFA(rm, alph))
		return toMFA(ops.Determinize(cat), limits)

	case *Intersection:
		lm, err := compileExpr(v.Left, alph, limits, depth+1)
		if err != nil {
			return nil, err
		}
		rm, err := compileExpr(v.Right, alph, limits, depth+1)
		if err != nil {
			return nil, err
		}
		return toMFA(ops.Intersect(mfaToDFA(lm, alph), mfaToDFA(rm, alph)), limits)

	case *Difference:
		lm, err := compileExpr(v.Left, alph, limits, depth+1)
		if err != nil {
			return nil, err
		}
		rm, err := compileExpr(v.Right, alph, limits, depth+1)
		if err != nil {
			return nil, err
		}
		return toMFA(ops.Difference(mfaToDFA(lm, alph), mfaToDFA(rm, alph)), limits)

	case *Option:
		xm, err := compileExpr(v.Operand, alph, limits, depth+1)
		if err != nil {
			return nil, err
		}
		return toMFA(ops.Determinize(ops.Option(mfaToNFA(xm, alph))), limits)

	case *KleeneStar:
		xm, err := compileExpr(v.Operand, alph, limits, depth+1)
		if err != nil {
			return nil, err
		}
		return toMFA(ops.Determinize(ops.KleeneStar(mfaToNFA(xm, alph))), limits)

	case *KleenePlus:
		xm, err := compileExpr(v.Operand, alph, limits, depth+1)
		if err != nil {
			return nil, err
		}
		return toMFA(ops.Determinize(ops.KleenePlus(mfaToNFA(xm, alph))), limits)

	case *Complement:
		xm, err := compileExpr(v.Operand, alph, limits, depth+1)
		if err != nil {
			return nil, err
		}
		return toMFA(ops.Complement(mfaToDFA(xm, alph)), limits)

	default:
		panic(fmt.Sprintf("alang: unknown expression type %T", e))
	}
}

// mfaToNFA embeds an MFA's structure into a fresh NFA over alph (no
// epsilons; a deterministic automaton is trivially a valid nondeterministic
// one). Symbols are translated by string, since m's canonical alphabet
// assigns indices by sort order while alph assigns them by insertion order.
func mfaToNFA(m *mfa.MFA, alph *alphabet.Mutable) *nfa.NFA {
	n := nfa.New(alph)
	if m.InitialState() == automaton.InvalidState {
		return n
	}
	n.SetInitial(m.InitialState(), true)
	for _, f := range m.FinalStates() {
		n.SetFinal(f, true)
	}
	for _, t := range m.AllTransitions() {
		sym := alph.GetOrAdd(m.Alphabet().SymbolAt(t.Symbol))
		n.AddTransition(automaton.Transition{From: t.From, Symbol: sym, To: t.To})
	}
	return n
}

// mfaToDFA embeds an MFA's structure into a fresh DFA over alph, the same
// way mfaToNFA does for NFA.
func mfaToDFA(m *mfa.MFA, alph *alphabet.Mutable) *dfa.DFA {
	d := dfa.New(alph)
	if m.InitialState() == automaton.InvalidState {
		return d
	}
	d.SetInitialState(m.InitialState())
	for _, f := range m.FinalStates() {
		d.SetFinal(f, true)
	}
	for _, t := range m.AllTransitions() {
		sym := alph.GetOrAdd(m.Alphabet().SymbolAt(t.Symbol))
		d.Add(automaton.Transition{From: t.From, Symbol: sym, To: t.To})
	}
	return d
}

// toMFA minimizes d (Brzozowski, which also discards inaccessible states)
// and canonicalizes the result, then enforces limits.
func toMFA(d *dfa.DFA, limits Limits) (*mfa.MFA, error) {
	m := mfa.FromDFA(ops.Minimize(d))
	if limits.MaxStates > 0 && m.StateCount() > limits.MaxStates {
		return nil, &CompileError{
			Kind:    StateLimitExceeded,
			Message: fmt.Sprintf("compiled automaton has %d states, exceeding limit %d", m.StateCount(), limits.MaxStates),
		}
	}
	return m, nil
}
