package template

import "strings"

// Write fills the template with one value per target, positionally
// aligned with the target list, and returns the resulting string. When
// values is shorter than the target list the missing positions are
// written as empty strings; extra trailing values are ignored. Write
// never fails.
func (t *Template) Write(values ...string) string {
	var b strings.Builder
	for _, bl := range t.blocks {
		b.WriteString(bl.Text)
		if bl.Target < len(values) {
			b.WriteString(values[bl.Target])
		}
	}
	b.WriteString(t.suffix)
	return b.String()
}
