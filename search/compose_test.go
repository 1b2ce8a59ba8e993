package search

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzofnat/elsgrep/core"
	"github.com/tzofnat/elsgrep/corpus"
)

func TestHitComposition(t *testing.T) {
	ctx := context.Background()

	t.Run("backward hit window and provenance", func(t *testing.T) {
		// Two verses: stream indices 0..3 are verse 1, indices 4..6 verse 2.
		src := &verseSource{chapters: [][]string{{"דגגב", "גגר"}}}
		c, _, err := corpus.Build(ctx, src, []string{"Scroll"})
		require.NoError(t, err)

		s, err := NewSearcher(c, WithContextPad(2))
		require.NoError(t, err)

		hits, err := s.Find(ctx, &core.Request{
			Pattern:  []rune("רבד"),
			SkipMin:  3,
			SkipMax:  3,
			Backward: true,
			MaxHits:  10,
		})
		require.NoError(t, err)
		require.Len(t, hits, 1)
		hit := hits[0]
		require.Equal(t, []int{6, 3, 0}, hit.Indices)

		// Provenance follows the start index, which on a backward hit is the
		// highest matched index, not the lowest.
		assert.Equal(t, core.Ref{Document: "Scroll", Chapter: 1, Verse: 2}, hit.Ref)

		// Pad 2 around the enclosing span [0, 6] clamps to the whole
		// 7-letter stream on both sides.
		require.Len(t, hit.Window, 7)
		matched := map[int]bool{0: true, 3: true, 6: true}
		for i, cell := range hit.Window {
			assert.Equal(t, c.Letter(i), cell.Letter, "cell %d", i)
			assert.Equal(t, matched[i], cell.Match, "cell %d", i)
		}
	})

	t.Run("interior window is span plus pad on each side", func(t *testing.T) {
		c := buildCorpus(t, "גגגאבגגג")
		s, err := NewSearcher(c, WithContextPad(1))
		require.NoError(t, err)

		hits, err := s.Find(ctx, request("אב", 1, 1))
		require.NoError(t, err)
		require.Len(t, hits, 1)
		hit := hits[0]

		// Span [3, 4] with pad 1 renders stream positions 2 through 5.
		require.Len(t, hit.Window, 4)
		assert.Equal(t, []rune("גאבג"), windowLetters(hit))
		assert.False(t, hit.Window[0].Match)
		assert.True(t, hit.Window[1].Match)
		assert.True(t, hit.Window[2].Match)
		assert.False(t, hit.Window[3].Match)
	})

	t.Run("window clamps at stream start only", func(t *testing.T) {
		c := buildCorpus(t, "אבגגגגגגגג")
		s, err := NewSearcher(c, WithContextPad(3))
		require.NoError(t, err)

		hits, err := s.Find(ctx, request("אב", 1, 1))
		require.NoError(t, err)
		require.Len(t, hits, 1)

		// Span [0, 1]: the left pad has nowhere to go, the right pad has room.
		assert.Len(t, hits[0].Window, 5)
		assert.Equal(t, []rune("אבגגג"), windowLetters(hits[0]))
	})

	t.Run("default pad applies without options", func(t *testing.T) {
		c := buildCorpus(t, strings.Repeat("ג", 50)+"אב"+strings.Repeat("ג", 48))
		s, err := NewSearcher(c)
		require.NoError(t, err)

		hits, err := s.Find(ctx, request("אב", 1, 1))
		require.NoError(t, err)
		require.Len(t, hits, 1)

		// Span [50, 51] with DefaultContextPad renders [10, 92).
		assert.Len(t, hits[0].Window, 2+2*DefaultContextPad)
	})
}

func windowLetters(hit *core.Hit) []rune {
	letters := make([]rune, len(hit.Window))
	for i, cell := range hit.Window {
		letters[i] = cell.Letter
	}
	return letters
}
