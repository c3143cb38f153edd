package parser

import (
	"github.com/JWesker/SalviaRenderer/common"
)

// Selector is ordered alternation. Branches are tried left to right; the
// first branch with a continuable result wins. A committed failure inside
// a branch does not stop later branches from being tried, which makes
// alternation the one structural way past an expected failure short of an
// error catcher; it is however remembered as worse than an ordinary
// failure when every branch fails.
type Selector struct {
	base
	branches []Parser
}

// NewSelector creates a selector with no branches. A selector with no
// branches always fails.
func NewSelector() *Selector {
	return &Selector{}
}

// AddBranch appends a branch, cloning it. Returns the selector for
// chaining.
func (s *Selector) AddBranch(p Parser) *Selector {
	s.branches = append(s.branches, p.Clone())
	return s
}

// Branches returns the branch list. Callers must not mutate it.
func (s *Selector) Branches() []Parser { return s.branches }

func (s *Selector) Parse(cur *Cursor, attr *Attribute, chat *common.DiagChat) Result {
	if len(s.branches) == 0 {
		return Failed
	}

	entry := cur.Mark()
	best := ExpectedFailed
	var bestChat *common.DiagChat

	for i, branch := range s.branches {
		var child Attribute
		branchChat := common.NewChat()
		res := branch.Parse(cur, &child, branchChat)

		if res.Continuable() {
			chat.Merge(branchChat)
			sel := NewSelectorAttribute()
			sel.Selected = child
			sel.SelectedIdx = i
			sel.SetTokenRange(cur.SpanFrom(entry))
			*attr = sel
			return res
		}

		if better := Better(best, res); better != best || bestChat == nil {
			best = better
			bestChat = branchChat
		}
		cur.Rewind(entry)
	}

	chat.Merge(bestChat)
	return best
}

func (s *Selector) Clone() Parser {
	clone := &Selector{base: s.base}
	clone.branches = make([]Parser, len(s.branches))
	for i, b := range s.branches {
		clone.branches[i] = b.Clone()
	}
	return clone
}
