package template

import (
	"sort"

	"github.com/arthur-debert/twofold/pkg/logging"
	"github.com/arthur-debert/twofold/pkg/search"
)

type occurrence struct {
	start  int
	end    int
	target int
}

// Compile resolves text against the ordered target list and returns the
// immutable segmentation the writer and reader operate on. Targets are
// plain substrings and may overlap; collisions resolve by the
// foremost-longest rule: the occurrence starting earliest wins, and among
// occurrences starting at the same position the longest wins. Every
// occurrence overlapping a winner's span is discarded.
//
// Compile is total: targets absent from text simply produce no blocks,
// and an empty target list yields a template that is all suffix.
func Compile(text string, targets []string) *Template {
	var occs []occurrence
	for ti, name := range targets {
		for _, sp := range search.FindAll(name, text) {
			occs = append(occs, occurrence{start: sp.Start, end: sp.End, target: ti})
		}
	}

	// Longest first among same-start occurrences, so the greedy pass
	// below can take the first surviving occurrence as the winner.
	sort.SliceStable(occs, func(i, j int) bool {
		if occs[i].start != occs[j].start {
			return occs[i].start < occs[j].start
		}
		return occs[i].end > occs[j].end
	})

	t := &Template{targets: append([]string(nil), targets...)}
	next := 0 // first byte of text not yet claimed by a winner
	for _, oc := range occs {
		if oc.start < next {
			continue // overlaps the previous winner, regardless of its own end
		}
		t.blocks = append(t.blocks, Block{Text: text[next:oc.start], Target: oc.target})
		next = oc.end
	}
	t.suffix = text[next:]

	logger := logging.GetLogger("template")
	logger.Debug().
		Int("targets", len(targets)).
		Int("occurrences", len(occs)).
		Int("blocks", len(t.blocks)).
		Msg("compiled template")
	return t
}
