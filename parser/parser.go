package parser

import (
	"github.com/JWesker/SalviaRenderer/common"
)

// Parser is one node of a combinator graph. A graph is immutable once
// grammar construction finishes, so the same graph may drive any number of
// concurrent parses as long as each parse has its own Cursor and DiagChat.
//
// Parse consumes tokens from cur. On a continuable result it stores the
// produced attribute through attr and leaves the cursor after the match;
// on Failed it leaves the cursor where it was at entry; on ExpectedFailed
// it leaves the cursor at the point of failure so a recovery handler can
// resynchronize from there. A selector is a backtrack boundary: when every
// branch fails it rewinds to its entry, whatever the result.
//
// The interface has an unexported method: combinator nodes are only built
// by this package's constructors and composition functions.
type Parser interface {
	Parse(cur *Cursor, attr *Attribute, chat *common.DiagChat) Result

	// Clone returns a deep structural copy. Composite nodes clone their
	// sub-parsers; rules are never cloned, only re-referenced.
	Clone() Parser

	// Expected reports whether a mismatch of this node is a committed
	// failure. The flag is set by Expect and read by enclosing queuers.
	Expected() bool

	setExpected(v bool)
}

// base carries the expected flag shared by every combinator node.
type base struct {
	expected bool
}

func (b *base) Expected() bool { return b.expected }

func (b *base) setExpected(v bool) { b.expected = v }

// describe names a parser for diagnostics: a terminal's description, a
// rule's name, or a generic fallback.
func describe(p Parser) string {
	switch p := p.(type) {
	case *Terminal:
		return p.Desc()
	case *Rule:
		return p.Name()
	case *RuleRef:
		return p.Name()
	case *EndHolder:
		return "end of file"
	default:
		return "syntax element"
	}
}

// foundText renders the token at the cursor for diagnostics.
func foundText(cur *Cursor) string {
	if cur.Done() {
		return "<end of file>"
	}
	return cur.Peek().Str
}
