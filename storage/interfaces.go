package storage

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/tzofnat/elsgrep/core"
)

// ChapterText is one cached chapter: the raw verse strings exactly as the
// remote library returned them, before any normalization. ID is the
// content-derived identity of the payload; two caches holding the same
// chapter text agree on it regardless of when they fetched.
type ChapterText struct {
	ID        core.ID
	Document  string
	Chapter   int
	Verses    []string
	FetchedAt time.Time
}

// ContentID derives the chapter's identity from its location and verse text.
func (t *ChapterText) ContentID() core.ID {
	var b strings.Builder
	b.WriteString(t.Document)
	b.WriteByte(0)
	b.WriteString(strconv.Itoa(t.Chapter))
	for _, verse := range t.Verses {
		b.WriteByte(0)
		b.WriteString(verse)
	}
	return core.IDFromContent(b.String())
}

// ChapterStore provides operations for the local chapter cache.
// Implementations must be thread-safe and support concurrent access.
type ChapterStore interface {
	// GetChapter retrieves a cached chapter.
	// Returns ErrNotFound if the chapter is not cached.
	GetChapter(ctx context.Context, document string, chapter int) (*ChapterText, error)

	// PutChapter stores a chapter, overwriting any previous entry.
	// Sets FetchedAt and ID if not already set.
	PutChapter(ctx context.Context, text *ChapterText) error

	// GetChapterCount retrieves a document's cached chapter count.
	// Returns ErrNotFound if the document's shape is not cached.
	GetChapterCount(ctx context.Context, document string) (int, error)

	// PutChapterCount stores a document's chapter count.
	PutChapterCount(ctx context.Context, document string, count int) error

	// DeleteDocument removes a document's shape and every cached chapter.
	// Deleting an uncached document is a no-op.
	DeleteDocument(ctx context.Context, document string) error

	// Close closes the storage backend and releases resources.
	Close() error
}
