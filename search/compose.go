package search

import (
	"github.com/tzofnat/elsgrep/core"
	"github.com/tzofnat/elsgrep/corpus"
)

// DefaultContextPad is the number of context letters rendered on each side
// of a hit's minimal enclosing span.
const DefaultContextPad = 40

// compose packages one verified match as a Hit.
//
// skip is signed; the indices progression runs start, start+skip, and so on,
// descending through the stream when skip is negative. The context window
// spans the minimal enclosing range of the progression plus pad letters on
// each side, clamped to stream bounds. Provenance is the source verse of the
// pattern's first letter, not of the window's first letter.
func compose(c *corpus.Corpus, start, skip, m, pad int) *core.Hit {
	indices := make([]int, m)
	for j := 0; j < m; j++ {
		indices[j] = start + j*skip
	}

	first, last := indices[0], indices[m-1]
	if first > last {
		first, last = last, first
	}

	lo := first - pad
	if lo < 0 {
		lo = 0
	}
	hi := last + pad + 1
	if hi > c.Len() {
		hi = c.Len()
	}

	matched := make(map[int]bool, m)
	for _, i := range indices {
		matched[i] = true
	}

	window := make([]core.WindowCell, 0, hi-lo)
	for i := lo; i < hi; i++ {
		window = append(window, core.WindowCell{
			Letter: c.Letter(i),
			Match:  matched[i],
		})
	}

	return &core.Hit{
		Ref:     c.Ref(start),
		Skip:    skip,
		Start:   start,
		Indices: indices,
		Window:  window,
	}
}
