package compare

import (
	"github.com/cespare/xxhash/v2"
	"github.com/ysaito/uracheck"
)

// MarkDuplicates labels every section whose content already appeared earlier
// in the sequence. The input slice is not mutated.
func MarkDuplicates(sections []uracheck.Section) []uracheck.Section {
	marked := make([]uracheck.Section, len(sections))
	seen := make(map[uint64]struct{}, len(sections))

	for i, s := range sections {
		h := xxhash.Sum64String(s.Content)
		if _, ok := seen[h]; ok {
			s.Duplication = uracheck.DuplicationFound
		} else {
			s.Duplication = uracheck.DuplicationNone
			seen[h] = struct{}{}
		}
		marked[i] = s
	}

	return marked
}
