// Package format maps typed values to and from the textual
// representation used by templates: the strings fed to a template's
// Write and the anchored patterns fed to its Reader. The template core
// never sees these descriptors, only the raw strings and opaque patterns
// they produce.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/twofold/pkg/pattern"
)

// Alignment places a value inside its padded width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

func (a Alignment) String() string {
	switch a {
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "left"
	}
}

// Padding describes how a formatted value is fitted into a fixed width.
// The zero Padding leaves values untouched. Fill defaults to a space.
type Padding struct {
	Align Alignment
	Width int
	Fill  rune
}

func (p Padding) fill() rune {
	if p.Fill == 0 {
		return ' '
	}
	return p.Fill
}

// Apply pads s to the configured width. Values already at or over the
// width pass through unchanged.
func (p Padding) Apply(s string) string {
	gap := p.Width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	f := string(p.fill())
	switch p.Align {
	case AlignRight:
		return strings.Repeat(f, gap) + s
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(f, left) + s + strings.Repeat(f, gap-left)
	default:
		return s + strings.Repeat(f, gap)
	}
}

// Trim strips the padding fill from the aligned side(s) of s, undoing
// Apply. When the value itself consists entirely of fill runes (a zero
// padded with '0', say) the last rune is kept so the value survives.
func (p Padding) Trim(s string) string {
	if p.Width <= 0 {
		return s
	}
	f := string(p.fill())
	var out string
	switch p.Align {
	case AlignRight:
		out = strings.TrimLeft(s, f)
	case AlignCenter:
		out = strings.Trim(s, f)
	default:
		out = strings.TrimRight(s, f)
	}
	if out == "" && s != "" {
		out = s[len(s)-1:]
	}
	return out
}

// wrap surrounds a pattern core with the fill runs the alignment allows.
func (p Padding) wrap(core string) string {
	if p.Width <= 0 {
		return core
	}
	f := `(?:` + regexp.QuoteMeta(string(p.fill())) + `)*`
	switch p.Align {
	case AlignRight:
		return f + core
	case AlignCenter:
		return f + core + f
	default:
		return core + f
	}
}

// Integer formats and reads whole numbers in a given base. A zero Base
// means 10; valid bases are 2 through 36.
type Integer struct {
	Base int
	Pad  Padding
}

func (f Integer) base() int {
	if f.Base == 0 {
		return 10
	}
	return f.Base
}

// Format renders v in the configured base, padded.
func (f Integer) Format(v int64) (string, error) {
	b := f.base()
	if b < 2 || b > 36 {
		return "", fmt.Errorf("integer base %d out of range [2,36]", b)
	}
	return f.Pad.Apply(strconv.FormatInt(v, b)), nil
}

// Parse reads a padded representation back into a number.
func (f Integer) Parse(s string) (int64, error) {
	return strconv.ParseInt(f.Pad.Trim(s), f.base(), 64)
}

// Pattern matches an optionally signed digit run in the configured base,
// surrounded by whatever fill the alignment allows.
func (f Integer) Pattern() pattern.Pattern {
	return pattern.MustCompile(f.Pad.wrap(`[+-]?` + digitClass(f.base()) + `+`))
}

func digitClass(base int) string {
	if base <= 10 {
		return fmt.Sprintf("[0-%c]", '0'+rune(base)-1)
	}
	last := 'a' + rune(base) - 11
	return fmt.Sprintf("[0-9a-%cA-%c]", last, 'A'+rune(base)-11)
}

// Decimal formats and reads decimal numbers with a fixed count of
// fraction digits, optionally in exponential notation.
type Decimal struct {
	Digits   int
	Exponent bool
	Pad      Padding
}

// Format renders v with the configured fraction digits.
func (f Decimal) Format(v float64) (string, error) {
	if f.Digits < 0 {
		return "", fmt.Errorf("decimal digit count %d is negative", f.Digits)
	}
	verb := byte('f')
	if f.Exponent {
		verb = 'e'
	}
	return f.Pad.Apply(strconv.FormatFloat(v, verb, f.Digits, 64)), nil
}

// Parse reads a padded representation back into a number.
func (f Decimal) Parse(s string) (float64, error) {
	return strconv.ParseFloat(f.Pad.Trim(s), 64)
}

// Pattern matches exactly the shape Format produces: a signed digit run
// with the configured fraction digits and, when Exponent is set, an
// exponent suffix.
func (f Decimal) Pattern() pattern.Pattern {
	frac := ""
	if f.Digits > 0 {
		frac = `\.[0-9]{` + strconv.Itoa(f.Digits) + `}`
	}
	var core string
	if f.Exponent {
		core = `[+-]?[0-9]` + frac + `[eE][+-][0-9]+`
	} else {
		core = `[+-]?[0-9]+` + frac
	}
	return pattern.MustCompile(f.Pad.wrap(core))
}

// Text passes strings through with padding only.
type Text struct {
	Pad Padding
}

// Format pads v.
func (f Text) Format(v string) string {
	return f.Pad.Apply(v)
}

// Parse strips the padding from s.
func (f Text) Parse(s string) string {
	return f.Pad.Trim(s)
}

// Pattern matches a run of exactly Width runes when a width is set.
// Without a width there is no way to know where a plain string ends, so
// the pattern falls back to a run of word characters; supply an explicit
// pattern for anything richer.
func (f Text) Pattern() pattern.Pattern {
	if f.Pad.Width > 0 {
		return pattern.MustCompile(fmt.Sprintf(`.{%d}`, f.Pad.Width))
	}
	return pattern.MustCompile(`\w+`)
}
