package compare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ysaito/uracheck"
	"github.com/ysaito/uracheck/compare"
)

func TestMarkDuplicates(t *testing.T) {
	t.Parallel()

	t.Run("repeated content after the first occurrence is flagged", func(t *testing.T) {
		t.Parallel()

		sections := []uracheck.Section{
			{Title: "一", Content: "同じ本文"},
			{Title: "二", Content: "別の本文"},
			{Title: "三", Content: "同じ本文"},
		}

		marked := compare.MarkDuplicates(sections)

		require.Len(t, marked, 3)
		assert.Equal(t, uracheck.DuplicationNone, marked[0].Duplication)
		assert.Equal(t, uracheck.DuplicationNone, marked[1].Duplication)
		assert.Equal(t, uracheck.DuplicationFound, marked[2].Duplication)
	})

	t.Run("duplication is keyed on content, not title", func(t *testing.T) {
		t.Parallel()

		sections := []uracheck.Section{
			{Title: "同じ見出し", Content: "本文一"},
			{Title: "同じ見出し", Content: "本文二"},
		}

		marked := compare.MarkDuplicates(sections)

		require.Len(t, marked, 2)
		assert.Equal(t, uracheck.DuplicationNone, marked[0].Duplication)
		assert.Equal(t, uracheck.DuplicationNone, marked[1].Duplication)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		t.Parallel()

		sections := []uracheck.Section{{Title: "一", Content: "本文"}}

		compare.MarkDuplicates(sections)

		assert.Equal(t, "", sections[0].Duplication)
	})
}
