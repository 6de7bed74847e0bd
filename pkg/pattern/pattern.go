// Package pattern defines the anchored matchers the template reader uses
// to extract target values from a candidate string.
//
// All patterns are anchored: they either match a prefix of their input or
// do not match at all. "Find anywhere" semantics would let a value drift
// away from its position in the template and are deliberately impossible
// to express here.
package pattern

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Pattern matches a prefix of its input. A zero-length match is valid and
// distinct from no match.
type Pattern interface {
	// Match reports the length of the prefix of s the pattern consumes,
	// or ok == false when the pattern does not match at the start of s.
	Match(s string) (n int, ok bool)

	// String describes the pattern for error messages.
	String() string
}

// Literal matches exactly itself.
type Literal string

// Match implements Pattern.
func (l Literal) Match(s string) (int, bool) {
	if strings.HasPrefix(s, string(l)) {
		return len(l), true
	}
	return 0, false
}

func (l Literal) String() string {
	return strconv.Quote(string(l))
}

type empty struct{}

// Empty matches the empty string at any position, consuming nothing.
var Empty Pattern = empty{}

func (empty) Match(string) (int, bool) { return 0, true }

func (empty) String() string { return "<empty>" }

// Regexp is a regular expression forced to match at the start of the
// input. The compiled expression is immutable and safe for concurrent
// use.
type Regexp struct {
	expr string
	re   *regexp.Regexp
}

// Compile builds an anchored pattern from a regular expression. The
// expression is wrapped in \A(?:...) so it can only ever match a prefix,
// whatever anchors it carries itself.
func Compile(expr string) (*Regexp, error) {
	re, err := regexp.Compile(`\A(?:` + expr + `)`)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", expr, err)
	}
	return &Regexp{expr: expr, re: re}, nil
}

// MustCompile is Compile for expressions known to be valid; it panics on
// a bad expression.
func MustCompile(expr string) *Regexp {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Match implements Pattern.
func (p *Regexp) Match(s string) (int, bool) {
	loc := p.re.FindStringIndex(s)
	if loc == nil {
		return 0, false
	}
	return loc[1], true
}

func (p *Regexp) String() string {
	return p.expr
}
