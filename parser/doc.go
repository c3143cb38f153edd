// Package parser implements the combinator engine that forms the front
// end of the shading-language compiler.
//
// Grammars are composed from a small set of primitives: terminals,
// repetition (Star, Opt, Plus), ordered alternation (Choice), ordered
// concatenation (Seq) with optional expectation points (Expect), negative
// lookahead (Not), end-of-input anchoring (End), named rules with late
// binding (Grammar, Rule), and recovery wrappers (Catch). Parsing a token
// slice yields a five-valued Result plus an Attribute tree annotated with
// rule ids and token ranges, which downstream passes walk to build the
// AST.
//
// The engine backtracks by saving and rewinding a cursor at combinator
// boundaries. A mismatch is ordinarily backtrackable; a mismatch at an
// expectation point is committed and propagates as ExpectedFailed until an
// alternation supplies a different branch or an error catcher's handler
// resynchronizes the cursor and downgrades the failure to a recovered
// state.
//
// Combinator graphs are immutable after grammar construction and may be
// shared by concurrent parses, each with its own Cursor and DiagChat.
package parser
