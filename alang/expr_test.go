package alang

import "testing"

func TestAlangExpressionString_SimpleSymbol(t *testing.T) {
	e := &Symbol{Name: "a"}
	if got := AlangExpressionString(e); got != "a" {
		t.Fatalf("got %q, want %q", got, "a")
	}
}

func TestAlangExpressionString_WildcardAndEmptyLang(t *testing.T) {
	if got := AlangExpressionString(&Wildcard{}); got != "." {
		t.Fatalf("got %q, want \".\"", got)
	}
	if got := AlangExpressionString(&EmptyLang{}); got != "()" {
		t.Fatalf("got %q, want \"()\"", got)
	}
}

// TestAlangExpressionString_RoundTrip reproduces the seed scenario: parsing
// "a? (b | c)+" and printing it back collapses whitespace and redundant
// parens to "a?(b|c)+".
func TestAlangExpressionString_RoundTrip(t *testing.T) {
	expr := &Concatenation{
		Left: &Option{Operand: &Symbol{Name: "a"}},
		Right: &KleenePlus{
			Operand: &Union{Left: &Symbol{Name: "b"}, Right: &Symbol{Name: "c"}},
		},
	}
	if got := AlangExpressionString(expr); got != "a?(b|c)+" {
		t.Fatalf("got %q, want %q", got, "a?(b|c)+")
	}
}

func TestAlangExpressionString_ParenthesizesLowerPrecedenceChild(t *testing.T) {
	// (a|b)c: Union as the left child of Concatenation needs parens since
	// Union's precedence (1) is lower than Concatenation's (4).
	expr := &Concatenation{
		Left:  &Union{Left: &Symbol{Name: "a"}, Right: &Symbol{Name: "b"}},
		Right: &Symbol{Name: "c"},
	}
	if got := AlangExpressionString(expr); got != "(a|b)c" {
		t.Fatalf("got %q, want %q", got, "(a|b)c")
	}
}

func TestAlangExpressionString_SamePrecedenceNoParens(t *testing.T) {
	// a|b|c: Union is right-leaning, and a right child at the same
	// precedence as its parent is never parenthesized.
	expr := &Union{
		Left:  &Symbol{Name: "a"},
		Right: &Union{Left: &Symbol{Name: "b"}, Right: &Symbol{Name: "c"}},
	}
	if got := AlangExpressionString(expr); got != "a|b|c" {
		t.Fatalf("got %q, want %q", got, "a|b|c")
	}
}

func TestAlangExpressionString_FuseAvoidance(t *testing.T) {
	// Concatenating two multi-char symbols without a separator would read
	// back as one Symbol token, so a space must be inserted.
	expr := &Concatenation{Left: &Symbol{Name: "foo"}, Right: &Symbol{Name: "bar"}}
	if got := AlangExpressionString(expr); got != "foo bar" {
		t.Fatalf("got %q, want %q", got, "foo bar")
	}
}

func TestAlangExpressionString_NoFuseAcrossOperator(t *testing.T) {
	// "a" concatenated with a Wildcard prints as "a.": the '.' operator
	// character can't fuse with a preceding SymbolChar, so no space is needed.
	expr := &Concatenation{Left: &Symbol{Name: "a"}, Right: &Wildcard{}}
	if got := AlangExpressionString(expr); got != "a." {
		t.Fatalf("got %q, want %q", got, "a.")
	}
}

func TestFuses(t *testing.T) {
	cases := []struct {
		l, r string
		want bool
	}{
		{"a", "b", true},
		{"a", ".", false},
		{"a", "", false},
		{"", "b", false},
		{"ab", "?", false},
	}
	for _, tc := range cases {
		if got := fuses(tc.l, tc.r); got != tc.want {
			t.Errorf("fuses(%q, %q) = %v, want %v", tc.l, tc.r, got, tc.want)
		}
	}
}

func TestPrecedenceOrdering(t *testing.T) {
	// Sanity-check the total ordering the parser and printer both depend on.
	if (&Union{}).precedence() >= (&Difference{}).precedence() {
		t.Fatal("Union must bind looser than Difference")
	}
	if (&Difference{}).precedence() >= (&Intersection{}).precedence() {
		t.Fatal("Difference must bind looser than Intersection")
	}
	if (&Intersection{}).precedence() >= (&Concatenation{}).precedence() {
		t.Fatal("Intersection must bind looser than Concatenation")
	}
	if (&Concatenation{}).precedence() >= (&Option{}).precedence() {
		t.Fatal("Concatenation must bind looser than the postfix operators")
	}
	if (&Option{}).precedence() >= (&Symbol{}).precedence() {
		t.Fatal("postfix operators must bind looser than a Primary")
	}
}
