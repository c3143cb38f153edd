package parser

import (
	"github.com/JWesker/SalviaRenderer/common"
)

// Rule is a named, id-bearing parser. Rules are what make grammars
// recursive: a rule may be declared first, referenced from any
// sub-expression (including its own body), and defined later. The last
// definition before parsing wins.
//
// After its body produces an attribute, the rule stamps its id and the
// matched token range onto it, which is how AST construction recognizes
// which grammar production a subtree came from.
type Rule struct {
	base
	id   int
	name string
	expr Parser
}

// NewRule creates an undefined rule. Rules are usually obtained from a
// Grammar, which allocates the id.
func NewRule(id int, name string) *Rule {
	return &Rule{id: id, name: name}
}

func (r *Rule) ID() int { return r.id }

func (r *Rule) Name() string { return r.name }

// Define assigns the rule's body, replacing any previous definition. The
// body is cloned; a body that is itself a rule is stored as a reference.
func (r *Rule) Define(p Parser) *Rule {
	if p == nil {
		panic("parser: rule defined with nil body")
	}
	r.expr = p.Clone()
	return r
}

// Defined reports whether the rule has a body.
func (r *Rule) Defined() bool { return r.expr != nil }

// Ref returns a non-owning reference to the rule, suitable for embedding
// in sub-expressions that would otherwise create an ownership cycle.
func (r *Rule) Ref() *RuleRef {
	return &RuleRef{target: r}
}

func (r *Rule) Parse(cur *Cursor, attr *Attribute, chat *common.DiagChat) Result {
	if r.expr == nil {
		chat.Report(UnresolvedRule, r.name).At(cur.Peek().Pos)
		return Failed
	}

	entry := cur.Mark()
	var child Attribute
	res := r.expr.Parse(cur, &child, chat)
	if !res.Continuable() {
		return res
	}

	out := child
	if r.id >= 0 {
		if out.RuleID() != NoRule && out.RuleID() != r.id {
			// The body was itself a rule; keep both tags by wrapping.
			wrap := NewSequenceAttribute()
			wrap.Children = append(wrap.Children, out)
			out = wrap
		}
		out.SetRuleID(r.id)
	}
	out.SetTokenRange(cur.SpanFrom(entry))
	*attr = out
	return res
}

// Clone returns a reference to the rule rather than a copy: cloning a
// composite that mentions a rule must preserve the rule's identity.
func (r *Rule) Clone() Parser {
	ref := r.Ref()
	ref.base = r.base
	return ref
}

// RuleRef forwards parsing to a rule without owning it. It exists solely
// to break ownership cycles in recursive grammars; its lifetime is bounded
// by the grammar that owns the rule.
type RuleRef struct {
	base
	target *Rule
}

// Name returns the referenced rule's name.
func (r *RuleRef) Name() string {
	if r.target == nil {
		return "<unresolved>"
	}
	return r.target.name
}

// Target returns the referenced rule.
func (r *RuleRef) Target() *Rule { return r.target }

func (r *RuleRef) Parse(cur *Cursor, attr *Attribute, chat *common.DiagChat) Result {
	if r.target == nil {
		chat.Report(UnresolvedRule, r.Name()).At(cur.Peek().Pos)
		return Failed
	}
	return r.target.Parse(cur, attr, chat)
}

func (r *RuleRef) Clone() Parser {
	clone := *r
	return &clone
}
