package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/tzofnat/elsgrep/storage"
)

// ChapterStore implements storage.ChapterStore for BadgerDB.
type ChapterStore struct {
	backend *Backend
}

var _ storage.ChapterStore = (*ChapterStore)(nil)

// NewChapterStore creates a new ChapterStore.
func NewChapterStore(backend *Backend) *ChapterStore {
	return &ChapterStore{backend: backend}
}

// Close is a no-op; the backend owns the database handle.
func (s *ChapterStore) Close() error {
	return nil
}

// GetChapter retrieves a cached chapter.
func (s *ChapterStore) GetChapter(ctx context.Context, document string, chapter int) (*storage.ChapterText, error) {
	var text *storage.ChapterText
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeChapterKey(document, chapter))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			text, err = storage.UnmarshalChapterText(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return text, nil
}

// PutChapter stores a chapter, overwriting any previous entry.
func (s *ChapterStore) PutChapter(ctx context.Context, text *storage.ChapterText) error {
	if text.FetchedAt.IsZero() {
		text.FetchedAt = time.Now().UTC()
	}
	if text.ID == 0 {
		text.ID = text.ContentID()
	}
	return s.backend.WithTx(func(tx *badger.Txn) error {
		key := makeChapterKey(text.Document, text.Chapter)
		if err := tx.Set(key, storage.MarshalChapterText(text)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetChapterCount retrieves a document's cached chapter count.
func (s *ChapterStore) GetChapterCount(ctx context.Context, document string) (int, error) {
	var count int
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeShapeKey(document))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			count, err = storage.UnmarshalChapterCount(val)
			return err
		})
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// PutChapterCount stores a document's chapter count.
func (s *ChapterStore) PutChapterCount(ctx context.Context, document string, count int) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeShapeKey(document), storage.MarshalChapterCount(count)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// DeleteDocument removes a document's shape and every cached chapter.
func (s *ChapterStore) DeleteDocument(ctx context.Context, document string) error {
	// Collect keys first; Badger disallows deleting under an open iterator.
	var keys [][]byte
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeDocumentChapterPrefix(document)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()
		for iter.Rewind(); iter.Valid(); iter.Next() {
			keys = append(keys, iter.Item().KeyCopy(nil))
		}
		return nil
	}, false)
	if err != nil {
		return err
	}
	keys = append(keys, makeShapeKey(document))

	return s.backend.WithTx(func(tx *badger.Txn) error {
		for _, key := range keys {
			if err := tx.Delete(key); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}
		}
		return tx.Commit()
	}, true)
}
