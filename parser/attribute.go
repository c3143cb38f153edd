package parser

import (
	"fmt"
	"strings"

	"github.com/JWesker/SalviaRenderer/common"
)

// NoRule is the rule id carried by attributes that were not produced by a
// named rule.
const NoRule = -1

// Attribute is one node of the tree a successful parse yields. Every
// attribute records the rule that produced it (or NoRule) and the token
// range its match spans; the four concrete shapes mirror the four
// structural combinators.
//
// Attribute trees are inputs to AST construction, which walks them by
// ChildAt/ChildCount without caring about the concrete shape.
type Attribute interface {
	// ChildAt returns the idx-th child, or nil if idx is out of range.
	ChildAt(idx int) Attribute
	// ChildCount returns the number of children.
	ChildCount() int

	RuleID() int
	SetRuleID(id int)

	// TokenRange returns the first and last token of the match. The end
	// token is Uninitialized when the match consumed no tokens.
	TokenRange() (beg, end common.Token)
	SetTokenRange(beg, end common.Token)
}

type attrBase struct {
	rid      int
	beg, end common.Token
}

func newAttrBase() attrBase {
	return attrBase{rid: NoRule, beg: common.Uninitialized, end: common.Uninitialized}
}

func (a *attrBase) RuleID() int { return a.rid }

func (a *attrBase) SetRuleID(id int) { a.rid = id }

func (a *attrBase) TokenRange() (common.Token, common.Token) { return a.beg, a.end }
func (a *attrBase) SetTokenRange(beg, end common.Token)      { a.beg, a.end = beg, end }

// TerminalAttribute is produced by a terminal match and carries the single
// matched token. The empty matches of the end holder and of negative
// lookahead produce a TerminalAttribute holding the Uninitialized token.
type TerminalAttribute struct {
	attrBase
	Tok common.Token
}

// NewTerminalAttribute returns a terminal attribute for tok, spanning it.
func NewTerminalAttribute(tok common.Token) *TerminalAttribute {
	a := &TerminalAttribute{attrBase: newAttrBase(), Tok: tok}
	if !tok.IsUninitialized() {
		a.SetTokenRange(tok, tok)
	}
	return a
}

func (a *TerminalAttribute) ChildAt(int) Attribute { return nil }

func (a *TerminalAttribute) ChildCount() int { return 0 }

// SequenceAttribute is produced by repeaters: a variable-length ordered
// list of children, one per successful repetition.
type SequenceAttribute struct {
	attrBase
	Children []Attribute
}

func NewSequenceAttribute() *SequenceAttribute {
	return &SequenceAttribute{attrBase: newAttrBase()}
}

func (a *SequenceAttribute) ChildAt(idx int) Attribute {
	if idx < 0 || idx >= len(a.Children) {
		return nil
	}
	return a.Children[idx]
}

func (a *SequenceAttribute) ChildCount() int { return len(a.Children) }

// SelectorAttribute is produced by alternation: the chosen branch's
// attribute plus the index of the branch that matched.
type SelectorAttribute struct {
	attrBase
	Selected    Attribute
	SelectedIdx int
}

func NewSelectorAttribute() *SelectorAttribute {
	return &SelectorAttribute{attrBase: newAttrBase(), SelectedIdx: -1}
}

func (a *SelectorAttribute) ChildAt(idx int) Attribute {
	if idx != 0 {
		return nil
	}
	return a.Selected
}

func (a *SelectorAttribute) ChildCount() int {
	if a.Selected == nil {
		return 0
	}
	return 1
}

// QueuerAttribute is produced by concatenation: a fixed-arity ordered list
// of children, one per sub-expression of the queue.
type QueuerAttribute struct {
	attrBase
	Children []Attribute
}

func NewQueuerAttribute() *QueuerAttribute {
	return &QueuerAttribute{attrBase: newAttrBase()}
}

func (a *QueuerAttribute) ChildAt(idx int) Attribute {
	if idx < 0 || idx >= len(a.Children) {
		return nil
	}
	return a.Children[idx]
}

func (a *QueuerAttribute) ChildCount() int { return len(a.Children) }

// DumpAttribute renders the tree as indented text for debugging and for
// golden-output tests. resolveRule maps a rule id to its name; it may be
// nil, in which case ids are printed numerically.
func DumpAttribute(a Attribute, resolveRule func(id int) string) string {
	var sb strings.Builder
	dumpAttr(&sb, a, resolveRule, 0)
	return sb.String()
}

func dumpAttr(sb *strings.Builder, a Attribute, resolveRule func(int) string, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	if a == nil {
		sb.WriteString("<nil>\n")
		return
	}

	switch a := a.(type) {
	case *TerminalAttribute:
		if a.Tok.IsUninitialized() {
			sb.WriteString("terminal <empty>")
		} else {
			fmt.Fprintf(sb, "terminal %q", a.Tok.Str)
		}
	case *SequenceAttribute:
		fmt.Fprintf(sb, "sequence n=%d", len(a.Children))
	case *SelectorAttribute:
		fmt.Fprintf(sb, "selector idx=%d", a.SelectedIdx)
	case *QueuerAttribute:
		fmt.Fprintf(sb, "queuer n=%d", len(a.Children))
	default:
		fmt.Fprintf(sb, "%T", a)
	}

	if id := a.RuleID(); id != NoRule {
		if resolveRule != nil {
			fmt.Fprintf(sb, " rule=%s", resolveRule(id))
		} else {
			fmt.Fprintf(sb, " rule=#%d", id)
		}
	}
	if beg, end := a.TokenRange(); !beg.IsUninitialized() {
		if end.IsUninitialized() {
			fmt.Fprintf(sb, " span=[%d,)", beg.Index)
		} else {
			fmt.Fprintf(sb, " span=[%d,%d]", beg.Index, end.Index)
		}
	}
	sb.WriteByte('\n')

	for i := 0; i < a.ChildCount(); i++ {
		dumpAttr(sb, a.ChildAt(i), resolveRule, depth+1)
	}
}
