package corpus

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tzofnat/elsgrep/storage"
)

// CachingSource is a TextSource decorator that serves chapter shapes and
// verse lists from a local ChapterStore, falling through to the wrapped
// source and writing back on a miss. Cache read or write failures other than
// a miss are logged and treated as misses; the remote source stays
// authoritative.
type CachingSource struct {
	source TextSource
	store  storage.ChapterStore
	logger *slog.Logger
}

var _ TextSource = (*CachingSource)(nil)

// CachingSourceOption configures a CachingSource.
type CachingSourceOption func(*CachingSource)

// WithCacheLogger sets a custom logger.
// Default is slog.Default().
func WithCacheLogger(logger *slog.Logger) CachingSourceOption {
	return func(c *CachingSource) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// NewCachingSource wraps source with the chapter cache in store.
func NewCachingSource(source TextSource, store storage.ChapterStore, opts ...CachingSourceOption) (*CachingSource, error) {
	if source == nil {
		return nil, ErrSourceRequired
	}
	if store == nil {
		return nil, errors.New("chapter store required")
	}

	c := &CachingSource{
		source: source,
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ChapterCount implements TextSource.
func (c *CachingSource) ChapterCount(ctx context.Context, document string) (int, error) {
	count, err := c.store.GetChapterCount(ctx, document)
	if err == nil {
		return count, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		c.logger.Warn("chapter count cache read failed", "document", document, "err", err)
	}

	count, err = c.source.ChapterCount(ctx, document)
	if err != nil {
		return 0, err
	}
	if err := c.store.PutChapterCount(ctx, document, count); err != nil {
		c.logger.Warn("chapter count cache write failed", "document", document, "err", err)
	}
	return count, nil
}

// Verses implements TextSource.
func (c *CachingSource) Verses(ctx context.Context, document string, chapter int) ([]string, error) {
	cached, err := c.store.GetChapter(ctx, document, chapter)
	if err == nil {
		return cached.Verses, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		c.logger.Warn("chapter cache read failed", "document", document, "chapter", chapter, "err", err)
	}

	verses, err := c.source.Verses(ctx, document, chapter)
	if err != nil {
		return nil, err
	}
	if err := c.store.PutChapter(ctx, &storage.ChapterText{
		Document: document,
		Chapter:  chapter,
		Verses:   verses,
	}); err != nil {
		c.logger.Warn("chapter cache write failed", "document", document, "chapter", chapter, "err", err)
	}
	return verses, nil
}
