package types

import (
	"errors"
	"fmt"
)

// FailureCode identifies one exact failure condition. Codes are stable
// contract values: callers and tests branch on them, so existing values
// never change meaning.
type FailureCode int

const (
	FailureUnknown     FailureCode = 0
	FailureAbsentInput FailureCode = 1

	FailureMixedIndent      FailureCode = 10
	FailureIndentStep       FailureCode = 11
	FailureUnexpectedIndent FailureCode = 12
	FailureMissingProperty  FailureCode = 13
	FailureMissingValue     FailureCode = 14
	FailureEntryShape       FailureCode = 15

	FailureNoMatch FailureCode = 20
)

// Failure binds an error to a stable condition code and, for grammar
// violations, the 1-based source line it was detected on. It wraps the
// underlying error so the coarse family code and message stay reachable
// through errors.As.
type Failure struct {
	Code FailureCode
	Line int
	Err  error
}

func (f Failure) Error() string {
	if f.Err != nil {
		return f.Err.Error()
	}
	return fmt.Sprintf("failure code %d", f.Code)
}

func (f Failure) Unwrap() error { return f.Err }

// FailureOf extracts the condition code carried by err, or
// FailureUnknown when err carries none.
func FailureOf(err error) FailureCode {
	var failure Failure
	if errors.As(err, &failure) {
		return failure.Code
	}
	return FailureUnknown
}

// FailureLine extracts the source line carried by err, or 0 when err
// carries none.
func FailureLine(err error) int {
	var failure Failure
	if errors.As(err, &failure) {
		return failure.Line
	}
	return 0
}
