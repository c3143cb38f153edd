package parser

import (
	"github.com/JWesker/SalviaRenderer/common"
)

// Terminal matches exactly one token of a configured kind. The description
// is what diagnostics call the token, e.g. "';'" or "identifier".
type Terminal struct {
	base
	kind common.Kind
	desc string
}

// NewTerminal creates a terminal parser for the given token kind.
func NewTerminal(kind common.Kind, desc string) *Terminal {
	return &Terminal{kind: kind, desc: desc}
}

func (t *Terminal) Kind() common.Kind { return t.kind }

func (t *Terminal) Desc() string { return t.desc }

// Parse consumes one token iff the token at the cursor has the terminal's
// kind. On a mismatch the cursor does not move; the result is Failed, or
// ExpectedFailed (with a diagnostic) when the terminal is marked expected.
func (t *Terminal) Parse(cur *Cursor, attr *Attribute, chat *common.DiagChat) Result {
	if tok := cur.Peek(); tok.Kind == t.kind {
		*attr = NewTerminalAttribute(cur.Next())
		return Succeeded
	}
	if t.expected {
		chat.Report(UnmatchedExpectation, t.desc, foundText(cur)).
			Span(cur.Peek(), common.Uninitialized).
			Cause(&ExpectationError{Expected: t.desc, Found: cur.Peek()})
		return ExpectedFailed
	}
	return Failed
}

func (t *Terminal) Clone() Parser {
	clone := *t
	return &clone
}
