// Package template implements bidirectional text templating over plain
// substring targets.
//
// A target is an ordinary substring of the template, not delimited by any
// special syntax, so targets may overlap or nest one another (think
// "tree", "tree-shaking" and "falling-tree" all registered against the
// same text). Compile resolves those collisions deterministically with a
// foremost-longest rule and produces an immutable Template: an ordered
// run of blocks, each a piece of static text followed by one target
// reference, plus a trailing static suffix.
//
// A compiled Template can be walked both ways. Write substitutes one
// value per target and concatenates; it never fails. Reader walks a
// candidate string left to right in lockstep with the blocks, verifying
// the static text and applying one anchored pattern per target, and
// either yields one Value per target or a positioned, typed error
// (BadFormatError, TooManyError). There is no backtracking: the compiled
// template already encodes the one canonical segmentation, so reading is
// verification plus extraction, not search.
//
// Templates are never mutated after Compile and may be shared freely
// across goroutines.
package template
