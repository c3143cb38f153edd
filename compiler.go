package sasl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/semaphore"

	"github.com/JWesker/SalviaRenderer/common"
	"github.com/JWesker/SalviaRenderer/parser"
)

// ErrInvalidSource is a sentinel error returned by Compiler.Compile when
// parsing produced error diagnostics but the configured DiagReporter kept
// returning nil.
var ErrInvalidSource = errors.New("compile failed: invalid shader source")

// SyntaxError is the diagnostic reported when the root rule fails without
// a more specific expectation failure below it.
var SyntaxError = common.Template{
	Code:   1001,
	Level:  common.Error,
	Format: "syntax error near '%s'",
}

// DiagReporter receives each diagnostic of a finished unit, in report
// order. Returning a non-nil error aborts the compilation with that
// error; returning nil lets the compiler surface as many diagnostics as
// it can find.
type DiagReporter func(d *common.Diag) error

// Lexer turns the source text of one translation unit into a token slice.
// The lexer is an external collaborator; the engine only requires that
// tokens arrive fully materialized and in source order.
type Lexer interface {
	Tokenize(name string, src []byte, chat *common.DiagChat) ([]common.Token, error)
}

// Unit is the outcome of compiling one translation unit.
type Unit struct {
	Name   string
	Tokens []common.Token
	// Attr is the attribute tree of the root rule; nil when the parse was
	// not continuable.
	Attr parser.Attribute
	// Result is the root rule's parse result.
	Result parser.Result
	// Chat holds the unit's diagnostics.
	Chat *common.DiagChat
}

// Compiler drives the front end over one or more translation units. The
// combinator graph reached from Root is shared read-only by all units;
// each unit parses with its own cursor and diagnostic chat, so units
// compile in parallel up to MaxParallelism.
type Compiler struct {
	// Resolves unit names to source text. Required.
	Resolver Resolver
	// Tokenizes source text. Required.
	Lexer Lexer
	// The root rule of the grammar. Required, and must be defined before
	// the first Compile call. Grammars normally anchor the root with an
	// end-of-input holder so success implies all tokens were consumed.
	Root *parser.Rule
	// The maximum number of units compiled concurrently. Non-positive
	// means min(runtime.NumCPU(), runtime.GOMAXPROCS(-1)).
	MaxParallelism int
	// Receives diagnostics after each unit finishes. Optional; the
	// default fails the compilation if any unit reported an error.
	Reporter DiagReporter
}

// Compile parses the named units and returns them in input order. When
// any unit recorded an error-level diagnostic, the units are returned
// together with ErrInvalidSource, or with the first error the Reporter
// returned.
func (c *Compiler) Compile(ctx context.Context, names ...string) ([]*Unit, error) {
	if len(names) == 0 {
		return nil, nil
	}
	if c.Resolver == nil || c.Lexer == nil || c.Root == nil {
		return nil, errors.New("sasl: Compiler requires Resolver, Lexer and Root")
	}
	if !c.Root.Defined() {
		return nil, fmt.Errorf("sasl: root rule '%s' has no definition", c.Root.Name())
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := c.MaxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(-1)
		if cpus := runtime.NumCPU(); par > cpus {
			par = cpus
		}
	}
	sem := semaphore.NewWeighted(int64(par))

	results := make([]*unitResult, len(names))
	for i, name := range names {
		r := &unitResult{ready: make(chan struct{})}
		results[i] = r
		go func(name string) {
			defer close(r.ready)
			if err := sem.Acquire(ctx, 1); err != nil {
				r.err = err
				return
			}
			defer sem.Release(1)
			r.unit, r.err = c.compileUnit(name)
		}(name)
	}

	units := make([]*Unit, len(names))
	for i, r := range results {
		select {
		case <-r.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if r.err != nil {
			return nil, r.err
		}
		units[i] = r.unit
	}

	// Units are returned even on failure so callers can inspect the
	// diagnostics directly.
	return units, c.report(units)
}

type unitResult struct {
	ready chan struct{}
	unit  *Unit
	err   error
}

func (c *Compiler) compileUnit(name string) (*Unit, error) {
	src, err := c.readSource(name)
	if err != nil {
		return nil, fmt.Errorf("sasl: resolving %q: %w", name, err)
	}

	unit := &Unit{Name: name, Chat: common.NewChat()}
	unit.Tokens, err = c.Lexer.Tokenize(name, src, unit.Chat)
	if err != nil {
		return nil, fmt.Errorf("sasl: lexing %q: %w", name, err)
	}

	cur := parser.NewCursor(unit.Tokens)
	unit.Result = c.Root.Parse(cur, &unit.Attr, unit.Chat)

	switch {
	case !unit.Result.Continuable():
		if unit.Chat.CountOf(common.Error)+unit.Chat.CountOf(common.Fatal) == 0 {
			found := "<end of file>"
			if !cur.Done() {
				found = cur.Peek().Str
			}
			unit.Chat.Report(SyntaxError, found).Span(cur.Peek(), common.Uninitialized)
		}
	case !cur.Done():
		unit.Chat.Report(parser.EndOfFileExpected, cur.Peek().Str).
			Span(cur.Peek(), common.Uninitialized)
	}
	return unit, nil
}

func (c *Compiler) readSource(name string) ([]byte, error) {
	rc, err := c.Resolver.FindSourceByName(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}

func (c *Compiler) report(units []*Unit) error {
	sawError := false
	for _, u := range units {
		for _, d := range u.Chat.Items() {
			if d.Level() <= common.Error {
				sawError = true
			}
			if c.Reporter != nil {
				if err := c.Reporter(d); err != nil {
					return err
				}
			}
		}
	}
	if sawError {
		return ErrInvalidSource
	}
	return nil
}
