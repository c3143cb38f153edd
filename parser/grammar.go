package parser

import (
	"fmt"
	"strings"

	"github.com/tidwall/btree"
)

// Grammar owns the rules of one language definition. It allocates rule
// ids, resolves them back to names for attribute dumps and diagnostics,
// and keeps the rules in id order so that walks over the grammar are
// deterministic.
//
// Rules may be requested before they are defined; mutual recursion is set
// up by fetching both rules first and defining their bodies afterwards.
// A grammar must not be mutated once parsing has started.
type Grammar struct {
	byID   btree.Map[int, *Rule]
	byName map[string]*Rule
	nextID int
}

// NewGrammar creates an empty grammar.
func NewGrammar() *Grammar {
	return &Grammar{byName: make(map[string]*Rule)}
}

// Rule returns the rule with the given name, creating an undefined rule
// with a fresh id on first use.
func (g *Grammar) Rule(name string) *Rule {
	if r, ok := g.byName[name]; ok {
		return r
	}
	r := NewRule(g.nextID, name)
	g.nextID++
	g.byName[name] = r
	g.byID.Set(r.id, r)
	return r
}

// RuleByID returns the rule with the given id, or nil.
func (g *Grammar) RuleByID(id int) *Rule {
	r, _ := g.byID.Get(id)
	return r
}

// RuleName resolves a rule id to its name; unknown ids yield "".
func (g *Grammar) RuleName(id int) string {
	r, ok := g.byID.Get(id)
	if !ok {
		return ""
	}
	return r.name
}

// Len returns the number of rules.
func (g *Grammar) Len() int {
	return g.byID.Len()
}

// Range calls fn for every rule in ascending id order until fn returns
// false.
func (g *Grammar) Range(fn func(r *Rule) bool) {
	g.byID.Scan(func(_ int, r *Rule) bool {
		return fn(r)
	})
}

// Undefined returns the names of rules that were referenced but never
// given a body, in id order. Grammars are expected to check this before
// their first parse.
func (g *Grammar) Undefined() []string {
	var names []string
	g.Range(func(r *Rule) bool {
		if !r.Defined() {
			names = append(names, r.name)
		}
		return true
	})
	return names
}

// Validate returns an error wrapping ErrUnresolvedRule if any rule was
// referenced but never defined.
func (g *Grammar) Validate() error {
	if names := g.Undefined(); len(names) > 0 {
		return fmt.Errorf("grammar: %s: %w", strings.Join(names, ", "), ErrUnresolvedRule)
	}
	return nil
}
