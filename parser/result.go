package parser

import (
	"fmt"

	"github.com/JWesker/SalviaRenderer/internal/ext/mathx"
)

// Result is the outcome of one parse attempt. The five values are totally
// ordered from worst to best; Worse and Better are min and max under that
// order.
//
// ExpectedFailed is a committed failure: somewhere below, a sub-expression
// marked as expected did not match, so enclosing sequences must not
// silently backtrack past it. Recovered and RecoveredExpectedFailed mean
// an error handler advanced the cursor past the trouble and parsing may
// continue.
type Result uint8

const (
	ExpectedFailed Result = iota
	Failed
	RecoveredExpectedFailed
	Recovered
	Succeeded
)

// Worse returns the lower-ranked of the two results.
func Worse(l, r Result) Result {
	return mathx.Min(l, r)
}

// Better returns the higher-ranked of the two results.
func Better(l, r Result) Result {
	return mathx.Max(l, r)
}

// RecoverResult maps a failure to its recovered counterpart: Failed
// becomes Recovered and ExpectedFailed becomes RecoveredExpectedFailed.
// Every other value is returned unchanged, so the mapping is idempotent.
func RecoverResult(v Result) Result {
	switch v {
	case Failed:
		return Recovered
	case ExpectedFailed:
		return RecoveredExpectedFailed
	default:
		return v
	}
}

// Continuable reports whether parsing after this result is meaningful.
func (r Result) Continuable() bool {
	return r >= RecoveredExpectedFailed
}

// IsFailure reports whether this result is one of the two failure values.
func (r Result) IsFailure() bool {
	return r == Failed || r == ExpectedFailed
}

func (r Result) String() string {
	switch r {
	case ExpectedFailed:
		return "expected_failed"
	case Failed:
		return "failed"
	case RecoveredExpectedFailed:
		return "recovered_expected_failed"
	case Recovered:
		return "recovered"
	case Succeeded:
		return "succeeded"
	default:
		return fmt.Sprintf("result(%d)", uint8(r))
	}
}
