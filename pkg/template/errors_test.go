package template

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	bad := &BadFormatError{Block: 2, Offset: 10, Expected: "abc", Actual: "xyz"}
	assert.Equal(t, ErrBadFormat, bad.Code())
	assert.Contains(t, bad.Error(), "BAD_FORMAT")
	assert.Contains(t, bad.Error(), `"abc"`)

	patternBad := &BadFormatError{Block: 1, Offset: 4, Pattern: "[0-9]+", Actual: "abc"}
	assert.Contains(t, patternBad.Error(), "[0-9]+")

	tooMany := &TooManyError{Target: "{A}", Blocks: []int{0, 3}, Values: []string{"x", "y"}}
	assert.Equal(t, ErrTooMany, tooMany.Code())
	assert.Contains(t, tooMany.Error(), "TOO_MANY")
	assert.Contains(t, tooMany.Error(), `"{A}"`)
}

func TestErrorPredicatesUnwrap(t *testing.T) {
	bad := &BadFormatError{Block: 0}
	tooMany := &TooManyError{Target: "{A}"}

	assert.True(t, IsBadFormat(bad))
	assert.False(t, IsTooMany(bad))
	assert.True(t, IsTooMany(tooMany))
	assert.False(t, IsBadFormat(tooMany))

	wrapped := fmt.Errorf("reading candidate: %w", bad)
	assert.True(t, IsBadFormat(wrapped), "predicates must see through wrapping")

	assert.False(t, IsBadFormat(nil))
	assert.False(t, IsTooMany(fmt.Errorf("unrelated")))
}
