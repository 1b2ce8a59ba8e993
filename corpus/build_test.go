package corpus

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzofnat/elsgrep/core"
	"github.com/tzofnat/elsgrep/hebrew"
)

// fakeSource serves documents from an in-memory map of chapters to verses.
type fakeSource struct {
	docs  map[string][][]string
	fail  map[string]int // document -> chapter that errors (0 = shape call)
	calls int
}

func (f *fakeSource) ChapterCount(ctx context.Context, document string) (int, error) {
	f.calls++
	if ch, ok := f.fail[document]; ok && ch == 0 {
		return 0, errors.New("shape unavailable")
	}
	chapters, ok := f.docs[document]
	if !ok {
		return 0, fmt.Errorf("unknown document %q", document)
	}
	return len(chapters), nil
}

func (f *fakeSource) Verses(ctx context.Context, document string, chapter int) ([]string, error) {
	f.calls++
	if ch, ok := f.fail[document]; ok && ch == chapter {
		return nil, errors.New("chapter unavailable")
	}
	chapters, ok := f.docs[document]
	if !ok || chapter < 1 || chapter > len(chapters) {
		return nil, fmt.Errorf("unknown chapter %s %d", document, chapter)
	}
	return chapters[chapter-1], nil
}

func twoBookSource() *fakeSource {
	return &fakeSource{docs: map[string][][]string{
		"Aleph": {
			{"אָב גָּד", "הוּ"}, // chapter 1: two verses
			{"זֵחַ"},            // chapter 2: one verse
		},
		"Bet": {
			{"טַי כַּף"}, // final pe normalizes to medial
		},
	}}
}

func TestBuild(t *testing.T) {
	ctx := context.Background()

	t.Run("stream order and provenance", func(t *testing.T) {
		c, stats, err := Build(ctx, twoBookSource(), []string{"Aleph", "Bet"})
		require.NoError(t, err)

		// Aleph 1:1 אבגד, 1:2 הו, 2:1 זח, then Bet 1:1 טיכפ.
		assert.Equal(t, []rune("אבגדהוזחטיכפ"), streamOf(c))
		assert.Equal(t, c.Len(), 12)

		assert.Equal(t, core.Ref{Document: "Aleph", Chapter: 1, Verse: 1}, c.Ref(0))
		assert.Equal(t, core.Ref{Document: "Aleph", Chapter: 1, Verse: 2}, c.Ref(5))
		assert.Equal(t, core.Ref{Document: "Aleph", Chapter: 2, Verse: 1}, c.Ref(6))
		assert.Equal(t, core.Ref{Document: "Bet", Chapter: 1, Verse: 1}, c.Ref(11))

		assert.Equal(t, 2, stats.Documents)
		assert.Equal(t, 3, stats.Chapters)
		assert.Equal(t, 4, stats.Verses)
		assert.Equal(t, 12, stats.Letters)
		assert.Greater(t, stats.DroppedMarks, 0) // vowel points
	})

	t.Run("document order changes the stream", func(t *testing.T) {
		c, _, err := Build(ctx, twoBookSource(), []string{"Bet", "Aleph"})
		require.NoError(t, err)
		assert.Equal(t, []rune("טיכפאבגדהוזח"), streamOf(c))
	})

	t.Run("position index partitions the stream", func(t *testing.T) {
		c, _, err := Build(ctx, twoBookSource(), []string{"Aleph", "Bet"})
		require.NoError(t, err)

		seen := make(map[int]int)
		for r := hebrew.Alef; r <= hebrew.Tav; r++ {
			prev := -1
			for _, pos := range c.Positions(r) {
				assert.Equal(t, r, c.Letter(pos))
				assert.Greater(t, pos, prev, "positions must ascend")
				prev = pos
				seen[pos]++
			}
		}
		assert.Len(t, seen, c.Len())
		for pos, count := range seen {
			assert.Equal(t, 1, count, "position %d indexed more than once", pos)
		}
	})

	t.Run("zero verse chapter contributes nothing", func(t *testing.T) {
		src := &fakeSource{docs: map[string][][]string{
			"Thin": {{}, {"אב"}, {}},
		}}
		c, stats, err := Build(ctx, src, []string{"Thin"})
		require.NoError(t, err)
		assert.Equal(t, 2, c.Len())
		assert.Equal(t, 3, stats.Chapters)
		assert.Equal(t, 1, stats.Verses)
	})

	t.Run("verse with no letters contributes nothing", func(t *testing.T) {
		src := &fakeSource{docs: map[string][][]string{
			"Marks": {{"׃ ־ 12", "אב"}},
		}}
		c, _, err := Build(ctx, src, []string{"Marks"})
		require.NoError(t, err)
		assert.Equal(t, 2, c.Len())
		assert.Equal(t, core.Ref{Document: "Marks", Chapter: 1, Verse: 2}, c.Ref(0))
	})

	t.Run("shape failure names the document", func(t *testing.T) {
		src := twoBookSource()
		src.fail = map[string]int{"Bet": 0}
		_, _, err := Build(ctx, src, []string{"Aleph", "Bet"})
		var srcErr *SourceError
		require.ErrorAs(t, err, &srcErr)
		assert.Equal(t, "Bet", srcErr.Document)
		assert.Zero(t, srcErr.Chapter)
	})

	t.Run("chapter failure names document and chapter", func(t *testing.T) {
		src := twoBookSource()
		src.fail = map[string]int{"Aleph": 2}
		_, _, err := Build(ctx, src, []string{"Aleph"})
		var srcErr *SourceError
		require.ErrorAs(t, err, &srcErr)
		assert.Equal(t, "Aleph", srcErr.Document)
		assert.Equal(t, 2, srcErr.Chapter)
	})

	t.Run("nil source", func(t *testing.T) {
		_, _, err := Build(ctx, nil, []string{"Aleph"})
		assert.ErrorIs(t, err, ErrSourceRequired)
	})

	t.Run("no documents", func(t *testing.T) {
		_, _, err := Build(ctx, twoBookSource(), nil)
		assert.ErrorIs(t, err, ErrNoDocuments)
	})

	t.Run("concurrent fetch is deterministic", func(t *testing.T) {
		sequential, _, err := Build(ctx, twoBookSource(), []string{"Aleph", "Bet"})
		require.NoError(t, err)
		concurrent, _, err := Build(ctx, twoBookSource(), []string{"Aleph", "Bet"},
			WithFetchConcurrency(4))
		require.NoError(t, err)
		assert.Equal(t, streamOf(sequential), streamOf(concurrent))
	})
}

func streamOf(c *Corpus) []rune {
	letters := make([]rune, c.Len())
	for i := range letters {
		letters[i] = c.Letter(i)
	}
	return letters
}
