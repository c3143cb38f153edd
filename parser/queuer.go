package parser

import (
	"github.com/JWesker/SalviaRenderer/common"
)

// Queuer is ordered concatenation. Sub-parsers run strictly left to right,
// their attributes collected into a queuer attribute. A sub-parser marked
// expected turns its mismatch into a committed failure: the queue returns
// ExpectedFailed and leaves the cursor at the point of failure so that a
// recovery handler can pick up from there.
type Queuer struct {
	base
	exprs []Parser
}

// NewQueuer creates a queuer with no sub-parsers. An empty queuer matches
// nothing and succeeds.
func NewQueuer() *Queuer {
	return &Queuer{}
}

// Append adds a sub-parser, cloning it. Whether the sub-parser is an
// expectation point is read from its own expected flag; Expect sets it.
func (q *Queuer) Append(p Parser) *Queuer {
	q.exprs = append(q.exprs, p.Clone())
	return q
}

// Exprs returns the sub-parser list. Callers must not mutate it.
func (q *Queuer) Exprs() []Parser { return q.exprs }

func (q *Queuer) Parse(cur *Cursor, attr *Attribute, chat *common.DiagChat) Result {
	entry := cur.Mark()
	qa := NewQueuerAttribute()
	final := Succeeded

	for _, e := range q.exprs {
		var child Attribute
		res := e.Parse(cur, &child, chat)

		if res.Continuable() {
			qa.Children = append(qa.Children, child)
			final = Worse(final, res)
			continue
		}

		if res == ExpectedFailed {
			// Already committed below; keep the cursor where the failure
			// happened.
			return ExpectedFailed
		}
		if e.Expected() {
			// Promote the mismatch to a committed failure.
			chat.Report(UnmatchedExpectation, describe(e), foundText(cur)).
				Span(cur.Peek(), common.Uninitialized).
				Cause(&ExpectationError{Expected: describe(e), Found: cur.Peek()})
			return ExpectedFailed
		}

		cur.Rewind(entry)
		return Failed
	}

	qa.SetTokenRange(cur.SpanFrom(entry))
	*attr = qa
	return final
}

func (q *Queuer) Clone() Parser {
	clone := &Queuer{base: q.base}
	clone.exprs = make([]Parser, len(q.exprs))
	for i, e := range q.exprs {
		clone.exprs[i] = e.Clone()
	}
	return clone
}
