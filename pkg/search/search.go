// Package search provides the plain-substring search primitive the
// template compiler is built on.
package search

import "strings"

// Span marks one occurrence of a needle inside a haystack as the
// half-open byte range [Start, End).
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// FindAll returns every occurrence of needle in haystack, left to right.
// Occurrences never overlap each other: after a match the scan resumes at
// the match's end. An empty needle matches nothing.
func FindAll(needle, haystack string) []Span {
	if needle == "" {
		return nil
	}
	var spans []Span
	from := 0
	for from+len(needle) <= len(haystack) {
		i := strings.Index(haystack[from:], needle)
		if i < 0 {
			break
		}
		start := from + i
		spans = append(spans, Span{Start: start, End: start + len(needle)})
		from = start + len(needle)
	}
	return spans
}
