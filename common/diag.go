package common

import (
	"fmt"
	"os"
	"strings"

	"github.com/petermattis/goid"
)

const (
	Fatal Level = 1 + iota
	Error
	Warning
	Note
)

// Level represents the severity of a diagnostic message.
type Level int8

func (l Level) String() string {
	switch l {
	case Fatal:
		return "fatal error"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	default:
		return fmt.Sprintf("level(%d)", int8(l))
	}
}

// Template describes one class of diagnostic: a stable numeric code, the
// severity, and a format string whose verbs are filled by the arguments
// passed to DiagChat.Report.
type Template struct {
	Code   int
	Level  Level
	Format string
}

// Diag is one recorded diagnostic. It is created by DiagChat.Report, which
// returns the item so the caller can attach a location or a token span
// fluently before moving on.
type Diag struct {
	template Template
	args     []any
	pos      SourcePos
	spanBeg  Token
	spanEnd  Token
	cause    error
}

// At attaches a source position to the diagnostic.
func (d *Diag) At(pos SourcePos) *Diag {
	d.pos = pos
	return d
}

// Span attaches the token range the diagnostic refers to. The position is
// taken from the first token unless one was set explicitly.
func (d *Diag) Span(beg, end Token) *Diag {
	d.spanBeg, d.spanEnd = beg, end
	if d.pos == (SourcePos{}) && !beg.IsUninitialized() {
		d.pos = beg.Pos
	}
	return d
}

// Cause attaches the underlying error value, for callers that inspect
// failures programmatically rather than through rendered messages.
func (d *Diag) Cause(err error) *Diag {
	d.cause = err
	return d
}

func (d *Diag) Code() int { return d.template.Code }

func (d *Diag) Err() error { return d.cause }

func (d *Diag) Level() Level { return d.template.Level }

func (d *Diag) Pos() SourcePos { return d.pos }

func (d *Diag) TokenSpan() (Token, Token) { return d.spanBeg, d.spanEnd }

// Message renders the human-readable text of the diagnostic.
func (d *Diag) Message() string {
	return fmt.Sprintf(d.template.Format, d.args...)
}

func (d *Diag) String() string {
	var sb strings.Builder
	if d.pos.Line > 0 {
		sb.WriteString(d.pos.String())
		sb.WriteString(": ")
	}
	fmt.Fprintf(&sb, "%s C%04d: %s", d.template.Level, d.template.Code, d.Message())
	return sb.String()
}

// DiagChat is an append-only sink for diagnostics. Every parse call
// threads a single chat through the combinator graph. Alternation collects
// each branch's diagnostics into a child chat and merges only the chat of
// the branch whose result it returns; negative lookahead discards the
// diagnostics of its attempt. Other combinators report straight into the
// chat they are given.
//
// A chat is single-writer for the duration of a parse. With the
// SASL_DEBUG environment variable set, the chat records the goroutine
// that first reported into it and panics on a report from any other.
type DiagChat struct {
	items []*Diag
	owner int64
}

var debugDiags = os.Getenv("SASL_DEBUG") != ""

// NewChat creates an empty diagnostic chat.
func NewChat() *DiagChat {
	return &DiagChat{}
}

// Report appends a new diagnostic built from the template and returns it
// for further decoration.
func (c *DiagChat) Report(t Template, args ...any) *Diag {
	c.checkOwner()
	d := &Diag{template: t, args: args}
	c.items = append(c.items, d)
	return d
}

// Items returns the recorded diagnostics in report order.
func (c *DiagChat) Items() []*Diag {
	return c.items
}

// Empty reports whether nothing has been recorded.
func (c *DiagChat) Empty() bool {
	return len(c.items) == 0
}

// CountOf returns how many recorded diagnostics are at the given level.
func (c *DiagChat) CountOf(l Level) int {
	n := 0
	for _, d := range c.items {
		if d.template.Level == l {
			n++
		}
	}
	return n
}

// Merge appends all diagnostics of src to c and empties src. Merging a nil
// or empty chat is a no-op.
func (c *DiagChat) Merge(src *DiagChat) {
	if src == nil || len(src.items) == 0 {
		return
	}
	c.checkOwner()
	c.items = append(c.items, src.items...)
	src.items = nil
}

// Clear discards all recorded diagnostics.
func (c *DiagChat) Clear() {
	c.items = nil
}

func (c *DiagChat) checkOwner() {
	if !debugDiags {
		return
	}
	gid := goid.Get()
	if c.owner == 0 {
		c.owner = gid
		return
	}
	if c.owner != gid {
		panic(fmt.Sprintf("common: diag chat written from goroutine %d, owned by %d", gid, c.owner))
	}
}
