package template

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the kind of read failure, so callers can branch
// exhaustively without matching message text.
type ErrorCode string

const (
	ErrBadFormat ErrorCode = "BAD_FORMAT"
	ErrTooMany   ErrorCode = "TOO_MANY"
)

// BadFormatError reports that a candidate string deviates from the
// template's fixed structure. Exactly one of Expected (a static-text
// literal) or Pattern (a pattern description) is meaningful, depending on
// which half of the block failed. Block is the ordinal of the failing
// block; a value equal to BlockCount() means the trailing suffix did not
// match. Offset is the byte position in the candidate where matching
// stopped, and Actual is the candidate content found there, clipped for
// reporting.
type BadFormatError struct {
	Block    int
	Offset   int
	Expected string
	Pattern  string
	Actual   string
}

// Code returns ErrBadFormat.
func (e *BadFormatError) Code() ErrorCode {
	return ErrBadFormat
}

func (e *BadFormatError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("[%s] block %d at byte %d: pattern %s does not match %q",
			ErrBadFormat, e.Block, e.Offset, e.Pattern, e.Actual)
	}
	return fmt.Sprintf("[%s] block %d at byte %d: expected %q, got %q",
		ErrBadFormat, e.Block, e.Offset, e.Expected, e.Actual)
}

// TooManyError reports that a target occurring at several template
// positions captured text at more than one of them. Captures are never
// merged, even when the texts are identical. Blocks holds the ordinal of
// every capturing block and Values the captured texts, index-aligned.
type TooManyError struct {
	Target string
	Blocks []int
	Values []string
}

// Code returns ErrTooMany.
func (e *TooManyError) Code() ErrorCode {
	return ErrTooMany
}

func (e *TooManyError) Error() string {
	return fmt.Sprintf("[%s] target %q captured at blocks %v: %q",
		ErrTooMany, e.Target, e.Blocks, e.Values)
}

// IsBadFormat reports whether err is, or wraps, a structural mismatch.
func IsBadFormat(err error) bool {
	var e *BadFormatError
	return errors.As(err, &e)
}

// IsTooMany reports whether err is, or wraps, a conflicting-capture
// error.
func IsTooMany(err error) bool {
	var e *TooManyError
	return errors.As(err, &e)
}
