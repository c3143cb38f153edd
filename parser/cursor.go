package parser

import (
	"github.com/JWesker/SalviaRenderer/common"
)

// Cursor is the parse position over a fully materialized token slice.
// Combinators advance it on a match and rewind it to a previously taken
// mark when they backtrack; nothing else ever moves it.
type Cursor struct {
	toks []common.Token
	idx  int
}

// CursorMark is the return value of [Cursor.Mark], which marks a position
// on a Cursor for rewinding to.
type CursorMark struct {
	owner *Cursor
	idx   int
}

// NewCursor returns a cursor positioned at the first token.
func NewCursor(toks []common.Token) *Cursor {
	return &Cursor{toks: toks}
}

// Mark records the current position for a later Rewind.
func (c *Cursor) Mark() CursorMark {
	return CursorMark{owner: c, idx: c.idx}
}

// Rewind moves the cursor back to the marked position.
//
// Panics if mark was not created by this cursor's Mark method.
func (c *Cursor) Rewind(mark CursorMark) {
	if mark.owner != c {
		panic("parser: rewound cursor using the wrong cursor's mark")
	}
	c.idx = mark.idx
}

// Done reports whether the cursor is at end-of-input.
func (c *Cursor) Done() bool {
	return c.idx >= len(c.toks)
}

// Peek returns the token at the cursor without consuming it, or the
// Uninitialized sentinel at end-of-input.
func (c *Cursor) Peek() common.Token {
	if c.Done() {
		return common.Uninitialized
	}
	return c.toks[c.idx]
}

// Next consumes and returns the token at the cursor, or the Uninitialized
// sentinel at end-of-input.
func (c *Cursor) Next() common.Token {
	if c.Done() {
		return common.Uninitialized
	}
	t := c.toks[c.idx]
	c.idx++
	return t
}

// Pos returns the cursor's index into the token slice.
func (c *Cursor) Pos() int {
	return c.idx
}

// SpanFrom returns the token range consumed since the mark was taken: the
// first consumed token and the last consumed token. When nothing was
// consumed, the first token is the one at the mark (Uninitialized at
// end-of-input) and the second is Uninitialized, denoting an empty range.
func (c *Cursor) SpanFrom(mark CursorMark) (beg, end common.Token) {
	if mark.owner != c {
		panic("parser: span taken using the wrong cursor's mark")
	}
	if mark.idx >= len(c.toks) {
		return common.Uninitialized, common.Uninitialized
	}
	if c.idx <= mark.idx {
		return c.toks[mark.idx], common.Uninitialized
	}
	return c.toks[mark.idx], c.toks[c.idx-1]
}
