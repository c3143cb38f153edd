package parser

import (
	"math"

	"github.com/JWesker/SalviaRenderer/common"
)

// Unlimited is the upper bound of a repeater with no repetition limit.
const Unlimited = math.MaxInt

// Repeater greedily matches its inner parser between lower and upper
// times, collecting the children into a sequence attribute. It never gives
// back already-matched elements: once the inner parser stops matching, the
// count either meets the lower bound or the whole repeater fails.
type Repeater struct {
	base
	lower, upper int
	expr         Parser
}

// NewRepeater creates a repeater with the given bounds. Star, Opt and Plus
// are the usual ways to build one.
func NewRepeater(lower, upper int, expr Parser) *Repeater {
	if expr == nil {
		panic("parser: repeater with nil sub-parser")
	}
	return &Repeater{lower: lower, upper: upper, expr: expr.Clone()}
}

func (r *Repeater) Bounds() (lower, upper int) { return r.lower, r.upper }

func (r *Repeater) Parse(cur *Cursor, attr *Attribute, chat *common.DiagChat) Result {
	entry := cur.Mark()
	seq := NewSequenceAttribute()
	final := Succeeded

	for len(seq.Children) < r.upper {
		var child Attribute
		before := cur.Mark()
		res := r.expr.Parse(cur, &child, chat)

		if res == ExpectedFailed {
			// Committed failures are not masked by repetition; the cursor
			// stays at the failure point.
			return ExpectedFailed
		}
		if !res.Continuable() {
			cur.Rewind(before)
			break
		}

		seq.Children = append(seq.Children, child)
		final = Worse(final, res)
		if cur.Pos() == before.idx {
			// A zero-width match would repeat forever.
			break
		}
	}

	if len(seq.Children) < r.lower {
		cur.Rewind(entry)
		return Failed
	}
	seq.SetTokenRange(cur.SpanFrom(entry))
	*attr = seq
	return final
}

func (r *Repeater) Clone() Parser {
	return &Repeater{base: r.base, lower: r.lower, upper: r.upper, expr: r.expr.Clone()}
}
