package parser

// Composition surface. These functions are the Go rendition of the EBNF
// operator set: Star (*p), Opt (-p), Plus (+p), Choice (p|q), Seq (p>>q),
// Seq with Expect (p>q), Not (!p) and Catch (p[handler]). Every function
// returns a fresh node that clones its operands, so a sub-expression can
// be reused freely; rules are the exception and are shared by reference.

// Star matches p zero or more times.
func Star(p Parser) *Repeater {
	return NewRepeater(0, Unlimited, p)
}

// Opt matches p zero or one time.
func Opt(p Parser) *Repeater {
	return NewRepeater(0, 1, p)
}

// Plus matches p one or more times.
func Plus(p Parser) *Repeater {
	return NewRepeater(1, Unlimited, p)
}

// Choice builds ordered alternation over the operands. An operand that is
// itself a plain selector is flattened into the result, so
// Choice(Choice(a, b), c) has three branches.
func Choice(ps ...Parser) *Selector {
	s := NewSelector()
	for _, p := range ps {
		if inner, ok := p.(*Selector); ok && !inner.Expected() {
			for _, b := range inner.branches {
				s.AddBranch(b)
			}
			continue
		}
		s.AddBranch(p)
	}
	return s
}

// Seq builds ordered concatenation over the operands. An operand that is
// itself a plain queuer is flattened into the result, so Seq(Seq(a, b), c)
// yields a single three-element queue and a flat queuer attribute. An
// operand carrying the expected flag is never flattened; its commitment
// applies to the operand as a whole.
func Seq(ps ...Parser) *Queuer {
	q := NewQueuer()
	for _, p := range ps {
		if inner, ok := p.(*Queuer); ok && !inner.Expected() {
			for _, e := range inner.exprs {
				q.Append(e)
			}
			continue
		}
		q.Append(p)
	}
	return q
}

// Expect marks a clone of p as an expectation point: inside a queue, a
// mismatch of the clone is committed rather than backtracked. Seq(p,
// Expect(q)) is the `p > q` of the combinator notation.
func Expect(p Parser) Parser {
	c := p.Clone()
	c.setExpected(true)
	return c
}

// Not builds negative lookahead over p.
func Not(p Parser) *Negativer {
	return NewNegativer(p)
}

// End returns an end-of-input anchor.
func End() *EndHolder {
	return NewEndHolder()
}
