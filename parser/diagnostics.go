package parser

import (
	"github.com/JWesker/SalviaRenderer/common"
)

// Diagnostic templates reported by the engine itself. Grammar layers have
// their own template sets; the code block 20xx is reserved for the parser.
var (
	// UnmatchedExpectation is reported when a sub-expression marked as
	// expected does not match. Arguments: description of the expected
	// element, text found at the cursor.
	UnmatchedExpectation = common.Template{
		Code:   2001,
		Level:  common.Error,
		Format: "syntax error: expected %s, but found '%s'",
	}

	// UnresolvedRule is reported when parsing reaches a rule that was
	// declared but never defined. Argument: rule name.
	UnresolvedRule = common.Template{
		Code:   2002,
		Level:  common.Fatal,
		Format: "rule '%s' was referenced but never defined",
	}

	// EndOfFileExpected is reported by the driver when the root rule
	// succeeded without consuming all input. Argument: text found at the
	// cursor.
	EndOfFileExpected = common.Template{
		Code:   2003,
		Level:  common.Error,
		Format: "expected end of file, but found '%s'",
	}
)
