package sefaria

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzofnat/elsgrep/corpus"
)

var _ corpus.TextSource = (*Client)(nil)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(
		WithBaseURL(server.URL),
		WithRequestRate(10000),
		WithRetry(3, time.Millisecond),
	)
}

func TestChapterCount(t *testing.T) {
	t.Run("reads length from shape", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/shape/Genesis", r.URL.Path)
			w.Write([]byte(`[{"book": "Genesis", "length": 50, "chapters": [31, 25]}]`))
		}))

		count, err := c.ChapterCount(context.Background(), "Genesis")
		require.NoError(t, err)
		assert.Equal(t, 50, count)
	})

	t.Run("empty shape is malformed", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))

		_, err := c.ChapterCount(context.Background(), "Genesis")
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("missing length is malformed", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"book": "Genesis"}]`))
		}))

		_, err := c.ChapterCount(context.Background(), "Genesis")
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("surfaces api status", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no such book", http.StatusNotFound)
		}))

		_, err := c.ChapterCount(context.Background(), "Atlantis")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})
}

func TestVerses(t *testing.T) {
	t.Run("verse list", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/texts/Genesis.3", r.URL.Path)
			assert.Equal(t, "0", r.URL.Query().Get("context"))
			w.Write([]byte(`{"he": ["בראשית ברא", "והארץ היתה"], "text": ["In the beginning"]}`))
		}))

		verses, err := c.Verses(context.Background(), "Genesis", 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"בראשית ברא", "והארץ היתה"}, verses)
	})

	t.Run("single segment text", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"he": "בראשית ברא"}`))
		}))

		verses, err := c.Verses(context.Background(), "Genesis", 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"בראשית ברא"}, verses)
	})

	t.Run("missing hebrew text is malformed", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"text": ["only a translation"]}`))
		}))

		_, err := c.Verses(context.Background(), "Genesis", 1)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})
}

func TestRetry(t *testing.T) {
	t.Run("recovers from transient server errors", func(t *testing.T) {
		var calls atomic.Int32
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte(`[{"length": 5}]`))
		}))

		count, err := c.ChapterCount(context.Background(), "Ruth")
		require.NoError(t, err)
		assert.Equal(t, 5, count)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		var calls atomic.Int32
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			http.Error(w, "no such book", http.StatusNotFound)
		}))

		_, err := c.ChapterCount(context.Background(), "Atlantis")
		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("gives up after the retry budget", func(t *testing.T) {
		var calls atomic.Int32
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
		}))

		_, err := c.ChapterCount(context.Background(), "Ruth")
		require.Error(t, err)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
		}))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := c.ChapterCount(ctx, "Ruth")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
