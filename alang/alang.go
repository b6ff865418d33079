// Package alang implements a small regex-like surface syntax over an
// arbitrary symbol alphabet: a precedence-climbing recursive-descent parser
// over a zero-copy cursor (cursor.go, parser.go), a right-leaning
// expression tree with a round-trippable canonical string form (expr.go),
// and a structural-recursion compiler that lowers an expression tree to a
// canonical minimal automaton via package ops (compiler.go).
//
// Compile parses and compiles a pattern string in one step, MustCompile
// panics on failure for package-init-time use, and CompileWithLimits
// exposes the state-budget, recursion-depth, and input-length knobs.
package alang

import (
	"github.com/coregx/alang/alphabet"
	"github.com/coregx/alang/mfa"
)

// Compile parses input as an Alang expression and compiles it to a
// canonical minimal automaton, using DefaultLimits.
func Compile(input string) (*mfa.MFA, error) {
	return CompileWithLimits(input, DefaultLimits())
}

// CompileWithLimits is Compile with caller-supplied Limits.
func CompileWithLimits(input string, limits Limits) (*mfa.MFA, error) {
	expr, err := ParseWithLimits(input, limits)
	if err != nil {
		return nil, err
	}
	return CompileExpr(expr, limits)
}

// CompileExpr compiles an already-parsed expression tree. Exposed so
// callers that build or transform expression trees programmatically need
// not round-trip through Alang syntax; the tree's nesting depth is checked
// against limits.MaxRecursionDepth since it never went through the parser's
// own guard.
func CompileExpr(expr Expr, limits Limits) (*mfa.MFA, error) {
	return compileExpr(expr, alphabet.NewMutable(), limits, 1)
}

// MustCompile is Compile, but panics if input fails to parse or compile.
// Intended for package-init-time use with literal patterns.
func MustCompile(input string) *mfa.MFA {
	m, err := Compile(input)
	if err != nil {
		panic(err)
	}
	return m
}
