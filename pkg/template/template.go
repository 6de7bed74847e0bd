package template

import "strings"

// Block is one segment of a compiled template: literal text immediately
// followed by one target reference. Target is an index into the target
// list the template was compiled with; Text may be empty.
type Block struct {
	Text   string
	Target int
}

// Template is the resolved, non-overlapping segmentation of a template
// string: blocks in template order, then a trailing static suffix. It is
// immutable after Compile and safe for concurrent use by any number of
// writers and readers.
type Template struct {
	blocks  []Block
	suffix  string
	targets []string
}

// BlockCount returns the number of blocks in the template.
func (t *Template) BlockCount() int {
	return len(t.blocks)
}

// BlockAt returns the block with index idx. It panics when idx is out of
// range, like a slice access.
func (t *Template) BlockAt(idx int) Block {
	return t.blocks[idx]
}

// Suffix returns the static text after the last block.
func (t *Template) Suffix() string {
	return t.suffix
}

// TargetCount returns the arity of the target list, including targets
// that never occur in the template text.
func (t *Template) TargetCount() int {
	return len(t.targets)
}

// TargetAt returns the name of the target with index idx.
func (t *Template) TargetAt(idx int) string {
	return t.targets[idx]
}

// Targets returns a copy of the ordered target list.
func (t *Template) Targets() []string {
	return append([]string(nil), t.targets...)
}

// Occurs reports whether the target with index idx appears in at least
// one block.
func (t *Template) Occurs(idx int) bool {
	for _, bl := range t.blocks {
		if bl.Target == idx {
			return true
		}
	}
	return false
}

// String reassembles the original template text: each block's static
// text followed by its target's name, then the suffix.
func (t *Template) String() string {
	var b strings.Builder
	for _, bl := range t.blocks {
		b.WriteString(bl.Text)
		b.WriteString(t.targets[bl.Target])
	}
	b.WriteString(t.suffix)
	return b.String()
}
