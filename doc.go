// Package sasl provides the driver for the shading-language compiler
// front end. "Compiling" here means resolving translation units to source
// text, tokenizing them, and parsing the token streams into attribute
// trees with diagnostics; later passes build and lower the AST from the
// attribute trees.
//
// The phases and their packages:
//  1. Resolve unit names to source text.
//     Also see: Resolver, SourceResolver
//  2. Tokenize (supplied by the caller through the Lexer interface).
//  3. Parse tokens into an attribute tree.
//     Also see: parser.Grammar, parser.Rule
//
// A Compiler accepts a list of unit names and produces one Unit per name.
// Only the Resolver, Lexer and Root fields are required. Units compile in
// parallel: the combinator graph is immutable during parsing, so a single
// grammar serves all units, each with its own cursor and diagnostic chat.
package sasl
