package corpus

import "github.com/tzofnat/elsgrep/core"

// Corpus is the finished letter stream with provenance and position index.
// It is immutable after Build returns and safe for concurrent reads.
type Corpus struct {
	letters []rune
	refs    []core.Ref
	index   map[rune][]int
}

// Len returns the stream length in letters.
func (c *Corpus) Len() int {
	return len(c.letters)
}

// Letter returns the letter at stream position i.
func (c *Corpus) Letter(i int) rune {
	return c.letters[i]
}

// Ref returns the source verse of the letter at stream position i.
func (c *Corpus) Ref(i int) core.Ref {
	return c.refs[i]
}

// Positions returns the ascending stream positions of letter r.
// The returned slice is shared and must not be modified.
func (c *Corpus) Positions(r rune) []int {
	return c.index[r]
}

// buildIndex constructs the position index in one pass over the stream.
func (c *Corpus) buildIndex() {
	c.index = make(map[rune][]int, 22)
	for i, r := range c.letters {
		c.index[r] = append(c.index[r], i)
	}
}
