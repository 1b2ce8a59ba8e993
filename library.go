// Copyright 2026 Tzofnat Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package elsgrep

import (
	"context"
	"log/slog"

	"github.com/tzofnat/elsgrep/corpus"
	"github.com/tzofnat/elsgrep/search"
	"github.com/tzofnat/elsgrep/sefaria"
	"github.com/tzofnat/elsgrep/storage"
	"github.com/tzofnat/elsgrep/storage/badger"
)

// Library wires the remote text source, the local chapter cache, and the
// search engine together behind one handle.
type Library struct {
	backend *badger.Backend
	store   storage.ChapterStore
	source  corpus.TextSource
	logger  *slog.Logger
}

// LibraryOption configures a Library.
type LibraryOption func(*libraryOptions)

type libraryOptions struct {
	source   corpus.TextSource
	baseURL  string
	inMemory bool
	logger   *slog.Logger
}

// WithTextSource replaces the default remote client, bypassing the library
// API entirely.
func WithTextSource(source corpus.TextSource) LibraryOption {
	return func(o *libraryOptions) {
		o.source = source
	}
}

// WithBaseURL points the default remote client at a different API root.
func WithBaseURL(baseURL string) LibraryOption {
	return func(o *libraryOptions) {
		o.baseURL = baseURL
	}
}

// WithInMemoryCache keeps the chapter cache in memory. Used by tests.
func WithInMemoryCache() LibraryOption {
	return func(o *libraryOptions) {
		o.inMemory = true
	}
}

// WithLibraryLogger sets a custom logger.
// Default is slog.Default().
func WithLibraryLogger(logger *slog.Logger) LibraryOption {
	return func(o *libraryOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// OpenLibrary opens the chapter cache at filePath and stands the remote
// source up behind it.
func OpenLibrary(filePath string, opts ...LibraryOption) (*Library, error) {
	options := &libraryOptions{
		baseURL: sefaria.DefaultBaseURL,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}
	store := badger.NewChapterStore(backend)

	remote := options.source
	if remote == nil {
		remote = sefaria.NewClient(
			sefaria.WithBaseURL(options.baseURL),
			sefaria.WithLogger(options.logger),
		)
	}

	cached, err := corpus.NewCachingSource(remote, store,
		corpus.WithCacheLogger(options.logger))
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Library{
		backend: backend,
		store:   store,
		source:  cached,
		logger:  options.logger,
	}, nil
}

// Close releases the chapter cache.
func (l *Library) Close() error {
	if err := l.store.Close(); err != nil {
		l.logger.Error("error closing chapter store", "err", err)
		return err
	}
	if err := l.backend.Close(); err != nil {
		l.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// ChapterStore exposes the chapter cache.
func (l *Library) ChapterStore() storage.ChapterStore {
	return l.store
}

// Source exposes the cache-fronted text source.
func (l *Library) Source() corpus.TextSource {
	return l.source
}

// BuildCorpus builds a letter stream over the given documents. Every chapter
// fetched along the way lands in the cache, so a build doubles as a prefetch.
func (l *Library) BuildCorpus(ctx context.Context, documents []string, opts ...corpus.BuildOption) (*corpus.Corpus, *corpus.BuildStats, error) {
	opts = append([]corpus.BuildOption{corpus.WithLogger(l.logger)}, opts...)
	return corpus.Build(ctx, l.source, documents, opts...)
}

// Evict drops a document's cached shape and chapters so the next build
// refetches it.
func (l *Library) Evict(ctx context.Context, document string) error {
	return l.store.DeleteDocument(ctx, document)
}

// NewSearcher creates a search engine over a built corpus.
func (l *Library) NewSearcher(c *corpus.Corpus, opts ...search.Option) (*search.Searcher, error) {
	opts = append([]search.Option{search.WithLogger(l.logger)}, opts...)
	return search.NewSearcher(c, opts...)
}
