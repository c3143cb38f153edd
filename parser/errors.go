package parser

import (
	"errors"
	"fmt"

	"github.com/JWesker/SalviaRenderer/common"
)

// ErrUnresolvedRule is a sentinel error wrapped by Grammar.Validate when
// a rule was referenced but never given a body.
var ErrUnresolvedRule = errors.New("rule referenced but never defined")

// ExpectationError describes a committed mismatch: the element the grammar
// required, and where the mismatch happened. It is carried alongside the
// UnmatchedExpectation diagnostic so callers that prefer error values over
// chat inspection can retrieve the failure.
type ExpectationError struct {
	// Expected is the human-readable description of the required element.
	Expected string
	// Found is the token at the point of failure; Uninitialized when the
	// failure happened at end-of-input.
	Found common.Token
}

func (e *ExpectationError) Error() string {
	if e.Found.IsUninitialized() {
		return fmt.Sprintf("expected %s at end of file", e.Expected)
	}
	return fmt.Sprintf("%s: expected %s, but found %q", e.Found.Pos, e.Expected, e.Found.Str)
}
