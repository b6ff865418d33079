package alang_test

import (
	"fmt"

	"github.com/coregx/alang/alang"
)

// ExampleCompile demonstrates parsing and compiling an Alang expression in
// one step.
func ExampleCompile() {
	m, err := alang.Compile("(a|b)+c")
	if err != nil {
		panic(err)
	}
	fmt.Println(m.Accepts([]string{"a", "b", "a", "c"}))
	fmt.Println(m.Accepts([]string{"c"}))
	// Output:
	// true
	// false
}

// ExampleMustCompile demonstrates panic-on-error compilation for use at
// package init time with literal patterns.
func ExampleMustCompile() {
	m := alang.MustCompile("a?")
	fmt.Println(m.Accepts(nil))
	// Output: true
}

// ExampleAlangExpressionString demonstrates that parsing and printing an
// expression collapses redundant whitespace and parentheses to its
// canonical form.
func ExampleAlangExpressionString() {
	expr, err := alang.Parse("a? (b | c)+")
	if err != nil {
		panic(err)
	}
	fmt.Println(alang.AlangExpressionString(expr))
	// Output: a?(b|c)+
}

// ExampleParse demonstrates that a malformed expression reports a
// structured error carrying the offset of the first problem.
func ExampleParse() {
	_, err := alang.Parse("a|")
	fmt.Println(err)
	// Output: alang: MissingRightOperand at offset 2: expected an operand after '|'
}
