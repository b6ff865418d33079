package alang

import "strings"

// cursor is an append-free view over a source string that always points at
// the next non-whitespace character or at end-of-input. Every advancing
// method trims leading whitespace on exit; every method may assume the
// cursor is already whitespace-trimmed on entry. It carries the input plus
// an offset and is mutated in place rather than copied per step.
type cursor struct {
	input string
	pos   int
}

// operatorChars is every character the grammar assigns special meaning to;
// anything else (and not whitespace) is a SymbolChar.
const operatorChars = "|&-?*+~()."

func newCursor(input string) *cursor {
	c := &cursor{input: input}
	c.skipWS()
	return c
}

func (c *cursor) skipWS() {
	for c.pos < len(c.input) && isSpace(c.input[c.pos]) {
		c.pos++
	}
}

// atEOI reports whether the cursor has reached end-of-input.
func (c *cursor) atEOI() bool {
	return c.pos >= len(c.input)
}

// offset returns the cursor's current 0-based position in the input.
func (c *cursor) offset() int {
	return c.pos
}

// peek returns the byte at the cursor without consuming it. Callers must
// check atEOI first.
func (c *cursor) peek() byte {
	return c.input[c.pos]
}

// advance consumes exactly one byte and trims any whitespace that follows.
func (c *cursor) advance() {
	c.pos++
	c.skipWS()
}

// readSymbol consumes a maximal run of SymbolChars starting at the cursor
// and trims trailing whitespace. The caller must ensure the cursor is
// positioned at a SymbolChar.
func (c *cursor) readSymbol() string {
	start := c.pos
	for !c.atEOI() && isSymbolChar(c.input[c.pos]) {
		c.pos++
	}
	s := c.input[start:c.pos]
	c.skipWS()
	return s
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isOperatorChar(b byte) bool {
	return strings.IndexByte(operatorChars, b) >= 0
}

// isSymbolChar reports whether b may appear inside a Symbol token: any
// non-whitespace character that isn't one of the grammar's operator
// characters.
func isSymbolChar(b byte) bool {
	return !isSpace(b) && !isOperatorChar(b)
}

// startsPrimary reports whether the cursor is positioned at a byte that can
// begin a Primary: '(', '.', or a SymbolChar. Used to detect
// MissingRightOperand after a binary operator and to decide whether a
// concatenation continues, without speculatively recursing into
// parsePrimary.
func startsPrimary(c *cursor) bool {
	if c.atEOI() {
		return false
	}
	b := c.peek()
	return b == '(' || b == '.' || isSymbolChar(b)
}
