package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for cached domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Ref locates a single letter's source verse within the corpus.
type Ref struct {
	Document string
	Chapter  int
	Verse    int
}

// WindowCell is one rendered position of a hit's context window.
type WindowCell struct {
	Letter rune
	Match  bool
}

// Hit is an immutable record of a single equidistant letter sequence match.
// Skip is signed: positive means the pattern reads in ascending stream order,
// negative means descending. Start is the stream index of the pattern's first
// letter, and Indices holds the full arithmetic progression of matched stream
// indices in pattern order. Window covers the minimal enclosing span of the
// match plus padding on each side.
type Hit struct {
	Ref     Ref
	Skip    int
	Start   int
	Indices []int
	Window  []WindowCell
}

// PatternLength returns the number of letters in the matched pattern.
func (h *Hit) PatternLength() int {
	return len(h.Indices)
}

// Request holds the parameters of one ELS search invocation.
// Pattern must already be encoded to canonical alphabet letters.
type Request struct {
	Pattern  []rune
	SkipMin  int
	SkipMax  int
	Forward  bool
	Backward bool
	MaxHits  int
}
