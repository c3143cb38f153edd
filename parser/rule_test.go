package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrammarAllocatesIDs(t *testing.T) {
	g := NewGrammar()
	a := g.Rule("alpha")
	b := g.Rule("beta")

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Same(t, a, g.Rule("alpha"), "same name yields the same rule")
	assert.Same(t, a, g.RuleByID(a.ID()))
	assert.Equal(t, "beta", g.RuleName(b.ID()))
	assert.Equal(t, 2, g.Len())
	assert.Nil(t, g.RuleByID(99))
	assert.Equal(t, "", g.RuleName(99))
}

func TestGrammarRangeOrder(t *testing.T) {
	g := NewGrammar()
	names := []string{"stmt", "expr", "term", "factor"}
	for _, n := range names {
		g.Rule(n)
	}

	var got []string
	g.Range(func(r *Rule) bool {
		got = append(got, r.Name())
		return true
	})
	assert.Equal(t, names, got, "rules iterate in id order")
}

func TestGrammarUndefined(t *testing.T) {
	g := NewGrammar()
	g.Rule("defined").Define(termID())
	g.Rule("missing")

	assert.Equal(t, []string{"missing"}, g.Undefined())
}

func TestRuleStampsID(t *testing.T) {
	g := NewGrammar()
	r := g.Rule("ident").Define(termID())

	res, attr, _, _ := parse(t, r, toks(t, "ID:x"))
	require.Equal(t, Succeeded, res)
	assert.Equal(t, r.ID(), attr.RuleID())
}

func TestRuleNegativeIDNotStamped(t *testing.T) {
	r := NewRule(NoRule, "anon").Define(termID())

	res, attr, _, _ := parse(t, r, toks(t, "ID:x"))
	require.Equal(t, Succeeded, res)
	assert.Equal(t, NoRule, attr.RuleID())
}

func TestRuleUnresolved(t *testing.T) {
	g := NewGrammar()
	r := g.Rule("ghost")

	res, attr, cur, chat := parse(t, r, toks(t, "ID:x"))
	assert.Equal(t, Failed, res)
	assert.Nil(t, attr)
	assert.Equal(t, 0, cur.Pos())

	require.Len(t, chat.Items(), 1)
	assert.Equal(t, UnresolvedRule.Code, chat.Items()[0].Code())
}

func TestRuleLateBinding(t *testing.T) {
	g := NewGrammar()
	r := g.Rule("item")

	// The reference is embedded before the rule has a body; the latest
	// definition at parse time wins.
	wrapped := Seq(r, End())

	r.Define(termID())
	res, _, _, _ := parse(t, wrapped, toks(t, "ID:x"))
	assert.Equal(t, Succeeded, res)

	r.Define(termNum())
	res, _, _, _ = parse(t, wrapped, toks(t, "NUM:3"))
	assert.Equal(t, Succeeded, res)

	res, _, _, _ = parse(t, wrapped, toks(t, "ID:x"))
	assert.Equal(t, Failed, res)
}

func TestMutualRecursion(t *testing.T) {
	g := NewGrammar()
	value := g.Rule("value")
	group := g.Rule("group")

	value.Define(Choice(termNum(), group))
	group.Define(Seq(termLParen(), value, termRParen()))

	res, attr, cur, _ := parse(t, value, toks(t, "LP:(", "LP:(", "NUM:3", "RP:)", "RP:)"))
	require.Equal(t, Succeeded, res)
	assert.True(t, cur.Done())
	assert.Equal(t, 3, countRuleTags(attr, value.ID()))
	assert.Equal(t, 2, countRuleTags(attr, group.ID()))
}

func TestRuleBodyIsRuleKeepsBothTags(t *testing.T) {
	g := NewGrammar()
	inner := g.Rule("inner").Define(termID())
	outer := g.Rule("outer").Define(inner)

	res, attr, _, _ := parse(t, outer, toks(t, "ID:x"))
	require.Equal(t, Succeeded, res)
	assert.Equal(t, outer.ID(), attr.RuleID())
	assert.Equal(t, 1, countRuleTags(attr, inner.ID()))
}

func TestCloneSharesRules(t *testing.T) {
	g := NewGrammar()
	r := g.Rule("item")
	composite := Seq(r, End())
	clone := composite.Clone()

	// Defining the rule after cloning is visible through both copies.
	r.Define(termID())

	res, _, _, _ := parse(t, composite, toks(t, "ID:x"))
	assert.Equal(t, Succeeded, res)
	res, _, _, _ = parse(t, clone, toks(t, "ID:x"))
	assert.Equal(t, Succeeded, res)
}

func TestRuleRefTarget(t *testing.T) {
	g := NewGrammar()
	r := g.Rule("item")
	ref := r.Ref()

	assert.Same(t, r, ref.Target())
	assert.Equal(t, "item", ref.Name())
}
