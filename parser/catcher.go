package parser

import (
	"github.com/JWesker/SalviaRenderer/common"
)

// ErrorHandler is the recovery callback of an error catcher. It receives
// the diagnostic chat, the cursor position at which the failed parse
// started, and the cursor itself, left wherever the failure put it. The
// handler may advance the cursor to a synchronization point and return a
// recovered result, or return a failure result to decline, in which case
// the catcher returns the original failure unchanged.
//
// Handlers are the only mechanism that can turn an ExpectedFailed back
// into a continuable state.
type ErrorHandler func(chat *common.DiagChat, origin CursorMark, cur *Cursor) Result

// SkipToKind returns a handler that advances the cursor past the next
// token of the given kind and reports the failure as recovered. If no such
// token remains, the handler declines.
func SkipToKind(kind common.Kind) ErrorHandler {
	return func(chat *common.DiagChat, origin CursorMark, cur *Cursor) Result {
		mark := cur.Mark()
		for !cur.Done() {
			if cur.Next().Kind == kind {
				return Recovered
			}
		}
		cur.Rewind(mark)
		return Failed
	}
}

// ErrorCatcher wraps a parser with a recovery handler. Continuable results
// pass through untouched; on a failure the handler runs and, if it
// recovers, the catcher yields the handler's result with a placeholder
// attribute spanning the skipped tokens.
type ErrorCatcher struct {
	base
	expr    Parser
	handler ErrorHandler
}

// Catch wraps p with the given handler.
func Catch(p Parser, handler ErrorHandler) *ErrorCatcher {
	if handler == nil {
		panic("parser: error catcher with nil handler")
	}
	return &ErrorCatcher{expr: p.Clone(), handler: handler}
}

func (c *ErrorCatcher) Parse(cur *Cursor, attr *Attribute, chat *common.DiagChat) Result {
	origin := cur.Mark()
	res := c.expr.Parse(cur, attr, chat)
	if res.Continuable() {
		return res
	}

	hres := c.handler(chat, origin, cur)
	if !hres.Continuable() {
		// The handler declined; the original failure stands.
		return res
	}
	if hres == Succeeded {
		// A handler cannot invent a match; the best it can do is recover
		// the failure it was handed.
		hres = RecoverResult(res)
	}
	if res == ExpectedFailed && hres == Recovered {
		hres = RecoveredExpectedFailed
	}

	placeholder := NewSequenceAttribute()
	placeholder.SetTokenRange(cur.SpanFrom(origin))
	*attr = placeholder
	return hres
}

func (c *ErrorCatcher) Clone() Parser {
	return &ErrorCatcher{base: c.base, expr: c.expr.Clone(), handler: c.handler}
}
