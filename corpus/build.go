package corpus

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/tzofnat/elsgrep/core"
	"github.com/tzofnat/elsgrep/hebrew"
)

// BuildStats reports what a corpus build consumed and produced.
// DroppedMarks counts the non-letter, non-whitespace characters the
// normalizer discarded; it is telemetry, not an error signal.
type BuildStats struct {
	Documents    int
	Chapters     int
	Verses       int
	Letters      int
	DroppedMarks int
}

// BuildOption configures a corpus build.
type BuildOption func(*builder)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) BuildOption {
	return func(b *builder) {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
	}
}

// WithFetchConcurrency sets how many chapters of one document may be fetched
// in flight at once. Fetches run concurrently but letters are always appended
// in (document, chapter, verse) order. Default is 1 (sequential).
func WithFetchConcurrency(n int) BuildOption {
	return func(b *builder) {
		if n < 1 {
			n = 1
		}
		b.fetchConcurrency = n
	}
}

type builder struct {
	source           TextSource
	fetchConcurrency int
	logger           *slog.Logger
}

// Build constructs a Corpus from the given documents in order.
//
// For each document the builder asks the source for its chapter count, then
// fetches every chapter's verse list, normalizes each verse independently,
// and appends the letters to the stream together with one provenance triple
// per letter. The position index is built in a single pass once all
// documents are consumed.
//
// A document or chapter with zero verses contributes nothing. A failing
// source call aborts the build with a *SourceError naming the document and
// chapter, leaving nothing half-applied for the caller to unwind; the build
// may then be retried per document.
func Build(ctx context.Context, source TextSource, documents []string, opts ...BuildOption) (*Corpus, *BuildStats, error) {
	if source == nil {
		return nil, nil, ErrSourceRequired
	}
	if len(documents) == 0 {
		return nil, nil, ErrNoDocuments
	}

	b := &builder{
		source:           source,
		fetchConcurrency: 1,
		logger:           slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	c := &Corpus{}
	stats := &BuildStats{}

	for _, document := range documents {
		if err := b.appendDocument(ctx, c, stats, document); err != nil {
			return nil, nil, err
		}
		stats.Documents++
	}

	c.buildIndex()
	b.logger.Info("corpus built",
		"documents", stats.Documents,
		"chapters", stats.Chapters,
		"verses", stats.Verses,
		"letters", stats.Letters,
		"droppedMarks", stats.DroppedMarks)

	return c, stats, nil
}

// appendDocument fetches one document's chapters and appends its letters.
func (b *builder) appendDocument(ctx context.Context, c *Corpus, stats *BuildStats, document string) error {
	chapterCount, err := b.source.ChapterCount(ctx, document)
	if err != nil {
		return &SourceError{Document: document, Err: err}
	}

	chapters, err := b.fetchChapters(ctx, document, chapterCount)
	if err != nil {
		return err
	}

	for chapterIdx, verses := range chapters {
		chapter := chapterIdx + 1
		for verseIdx, raw := range verses {
			verse := verseIdx + 1
			letters, dropped := hebrew.Normalize(raw)
			stats.DroppedMarks += dropped
			if len(letters) == 0 {
				continue
			}
			ref := core.Ref{Document: document, Chapter: chapter, Verse: verse}
			c.letters = append(c.letters, letters...)
			for range letters {
				c.refs = append(c.refs, ref)
			}
			stats.Letters += len(letters)
		}
		stats.Verses += len(verses)
		stats.Chapters++
	}

	b.logger.Debug("document appended", "document", document, "chapters", chapterCount)
	return nil
}

// fetchChapters retrieves every chapter's verse list, optionally with
// bounded concurrency. Results come back indexed so append order never
// depends on fetch completion order.
func (b *builder) fetchChapters(ctx context.Context, document string, chapterCount int) ([][]string, error) {
	chapters := make([][]string, chapterCount)

	if b.fetchConcurrency <= 1 {
		for i := 0; i < chapterCount; i++ {
			verses, err := b.source.Verses(ctx, document, i+1)
			if err != nil {
				return nil, &SourceError{Document: document, Chapter: i + 1, Err: err}
			}
			chapters[i] = verses
		}
		return chapters, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.fetchConcurrency)
	for i := 0; i < chapterCount; i++ {
		g.Go(func() error {
			verses, err := b.source.Verses(gctx, document, i+1)
			if err != nil {
				return &SourceError{Document: document, Chapter: i + 1, Err: err}
			}
			chapters[i] = verses
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return chapters, nil
}
