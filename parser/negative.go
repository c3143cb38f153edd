package parser

import (
	"github.com/JWesker/SalviaRenderer/common"
)

// Negativer is negative lookahead: it succeeds, consuming nothing, iff its
// inner parser does not produce a continuable result. The inner attempt is
// fully transactional: the cursor is always rewound and any diagnostics
// the attempt recorded are discarded, so a committed failure inside the
// lookahead never escapes it.
type Negativer struct {
	base
	expr Parser
}

// NewNegativer creates a negative-lookahead wrapper around expr.
func NewNegativer(expr Parser) *Negativer {
	if expr == nil {
		panic("parser: negative lookahead with nil sub-parser")
	}
	return &Negativer{expr: expr.Clone()}
}

func (n *Negativer) Parse(cur *Cursor, attr *Attribute, chat *common.DiagChat) Result {
	entry := cur.Mark()
	var inner Attribute
	res := n.expr.Parse(cur, &inner, common.NewChat())
	cur.Rewind(entry)

	if res.Continuable() {
		return Failed
	}
	*attr = NewTerminalAttribute(common.Uninitialized)
	return Succeeded
}

func (n *Negativer) Clone() Parser {
	return &Negativer{base: n.base, expr: n.expr.Clone()}
}
