package parser

import (
	"github.com/JWesker/SalviaRenderer/common"
)

// EndHolder succeeds iff the cursor is at end-of-input, producing an empty
// terminal attribute. Top-level grammars use it to anchor the root rule so
// that success implies all input was consumed.
type EndHolder struct {
	base
}

// NewEndHolder creates an end-of-input anchor.
func NewEndHolder() *EndHolder {
	return &EndHolder{}
}

func (e *EndHolder) Parse(cur *Cursor, attr *Attribute, chat *common.DiagChat) Result {
	if !cur.Done() {
		if e.expected {
			chat.Report(EndOfFileExpected, foundText(cur)).
				Span(cur.Peek(), common.Uninitialized)
			return ExpectedFailed
		}
		return Failed
	}
	*attr = NewTerminalAttribute(common.Uninitialized)
	return Succeeded
}

func (e *EndHolder) Clone() Parser {
	clone := *e
	return &clone
}
