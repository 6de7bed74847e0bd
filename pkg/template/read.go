package template

import (
	"strings"

	"github.com/arthur-debert/twofold/pkg/pattern"
)

// Value is the outcome of reading one target: the captured text and
// whether anything was captured at all. A target that never occurs in the
// template, or whose occurrences carry no pattern, reads as not found;
// that is distinct from a malformed candidate, which is an error.
type Value struct {
	Text  string
	Found bool
}

// Reader extracts target values from candidate strings known to share a
// compiled template's static structure. A Reader is immutable and safe
// for concurrent use.
type Reader struct {
	tmpl     *Template
	patterns []pattern.Pattern
}

// Reader binds one extraction pattern per target, positionally aligned
// with the target list. A nil or missing pattern stands for "capture
// nothing": the surrounding static text is still verified, but no input
// is consumed and no value recorded for that occurrence.
func (t *Template) Reader(patterns ...pattern.Pattern) *Reader {
	return &Reader{
		tmpl:     t,
		patterns: append([]pattern.Pattern(nil), patterns...),
	}
}

// Template returns the compiled template the reader operates on.
func (r *Reader) Template() *Template {
	return r.tmpl
}

func (r *Reader) pattern(target int) pattern.Pattern {
	if target < len(r.patterns) {
		return r.patterns[target]
	}
	return nil
}

type capture struct {
	block int
	text  string
}

// errContext bounds how much of the candidate an error message carries.
const errContext = 24

func clip(s string, n int) string {
	if n < errContext {
		n = errContext
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Read scans candidate left to right in lockstep with the compiled
// blocks: each block's static text must appear exactly at the cursor,
// then the block's target pattern is applied anchored at the cursor.
// After the last block the remainder must equal the template suffix
// exactly. There is no backtracking; the first deviation aborts the scan
// with a *BadFormatError carrying the block ordinal and byte offset.
//
// A target captured at more than one block is reconciled after the scan:
// if any of its captures is non-empty the read fails with a
// *TooManyError, even when all captured texts are identical. Captures
// that are all empty collapse to a single empty value.
func (r *Reader) Read(candidate string) ([]Value, error) {
	rest := candidate
	offset := 0
	captures := make([][]capture, r.tmpl.TargetCount())

	for i, bl := range r.tmpl.blocks {
		if !strings.HasPrefix(rest, bl.Text) {
			return nil, &BadFormatError{
				Block:    i,
				Offset:   offset,
				Expected: bl.Text,
				Actual:   clip(rest, len(bl.Text)),
			}
		}
		rest = rest[len(bl.Text):]
		offset += len(bl.Text)

		p := r.pattern(bl.Target)
		if p == nil {
			continue
		}
		n, ok := p.Match(rest)
		if !ok {
			return nil, &BadFormatError{
				Block:   i,
				Offset:  offset,
				Pattern: p.String(),
				Actual:  clip(rest, 0),
			}
		}
		captures[bl.Target] = append(captures[bl.Target], capture{block: i, text: rest[:n]})
		rest = rest[n:]
		offset += n
	}

	// The suffix must account for the whole remainder, not merely prefix
	// it: trailing content is a format error, not slack.
	if rest != r.tmpl.suffix {
		return nil, &BadFormatError{
			Block:    r.tmpl.BlockCount(),
			Offset:   offset,
			Expected: r.tmpl.suffix,
			Actual:   clip(rest, len(r.tmpl.suffix)),
		}
	}

	values := make([]Value, r.tmpl.TargetCount())
	for ti, caps := range captures {
		switch len(caps) {
		case 0:
			// never occurred, or occurred with no pattern
		case 1:
			values[ti] = Value{Text: caps[0].text, Found: true}
		default:
			allEmpty := true
			for _, c := range caps {
				if c.text != "" {
					allEmpty = false
					break
				}
			}
			if allEmpty {
				values[ti] = Value{Found: true}
				continue
			}
			err := &TooManyError{Target: r.tmpl.targets[ti]}
			for _, c := range caps {
				err.Blocks = append(err.Blocks, c.block)
				err.Values = append(err.Values, c.text)
			}
			return nil, err
		}
	}
	return values, nil
}
