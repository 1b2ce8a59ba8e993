package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzofnat/elsgrep/core"
)

func TestWriteCSV(t *testing.T) {
	t.Run("header and rows in hit order", func(t *testing.T) {
		hits := []*core.Hit{
			{
				Ref:     core.Ref{Document: "Genesis", Chapter: 1, Verse: 1},
				Skip:    50,
				Start:   4,
				Indices: []int{4, 54, 104, 154},
			},
			{
				Ref:     core.Ref{Document: "Exodus", Chapter: 2, Verse: 3},
				Skip:    -7,
				Start:   900,
				Indices: []int{900, 893},
			},
		}

		var buf strings.Builder
		require.NoError(t, WriteCSV(&buf, hits))

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "document,chapter,verse,skip,start_index,pattern_length", lines[0])
		assert.Equal(t, "Genesis,1,1,50,4,4", lines[1])
		assert.Equal(t, "Exodus,2,3,-7,900,2", lines[2])
	})

	t.Run("no hits writes header only", func(t *testing.T) {
		var buf strings.Builder
		require.NoError(t, WriteCSV(&buf, nil))
		assert.Equal(t, "document,chapter,verse,skip,start_index,pattern_length\n", buf.String())
	})

	t.Run("document names are quoted when needed", func(t *testing.T) {
		hits := []*core.Hit{
			{
				Ref:     core.Ref{Document: "Song of Songs, Abridged", Chapter: 1, Verse: 2},
				Skip:    1,
				Start:   0,
				Indices: []int{0, 1},
			},
		}

		var buf strings.Builder
		require.NoError(t, WriteCSV(&buf, hits))
		assert.Contains(t, buf.String(), `"Song of Songs, Abridged",1,2,1,0,2`)
	})
}
