package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *Request {
	return &Request{
		Pattern: []rune("תורה"),
		SkipMin: 1,
		SkipMax: 100,
		Forward: true,
		MaxHits: 50,
	}
}

func TestValidateRequest(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		require.NoError(t, ValidateRequest(validRequest()))
	})

	t.Run("nil request", func(t *testing.T) {
		err := ValidateRequest(nil)
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("empty pattern", func(t *testing.T) {
		req := validRequest()
		req.Pattern = nil
		err := ValidateRequest(req)
		assert.ErrorIs(t, err, ErrInvalidRequest)
		assert.ErrorIs(t, err, ErrEmptyPattern)
	})

	t.Run("zero skip min", func(t *testing.T) {
		req := validRequest()
		req.SkipMin = 0
		err := ValidateRequest(req)
		assert.ErrorIs(t, err, ErrInvalidSkipRange)
	})

	t.Run("inverted skip range", func(t *testing.T) {
		req := validRequest()
		req.SkipMin = 10
		req.SkipMax = 2
		err := ValidateRequest(req)
		assert.ErrorIs(t, err, ErrInvalidSkipRange)
	})

	t.Run("no direction selected", func(t *testing.T) {
		req := validRequest()
		req.Forward = false
		req.Backward = false
		err := ValidateRequest(req)
		assert.ErrorIs(t, err, ErrNoDirection)
	})

	t.Run("non-positive max hits", func(t *testing.T) {
		req := validRequest()
		req.MaxHits = 0
		err := ValidateRequest(req)
		assert.ErrorIs(t, err, ErrInvalidMaxHits)
	})

	t.Run("backward only is valid", func(t *testing.T) {
		req := validRequest()
		req.Forward = false
		req.Backward = true
		require.NoError(t, ValidateRequest(req))
	})
}

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, IDFromContent("Genesis.3"), IDFromContent("Genesis.3"))
	})

	t.Run("distinct content distinct ids", func(t *testing.T) {
		assert.NotEqual(t, IDFromContent("Genesis.3"), IDFromContent("Genesis.4"))
	})
}

func TestHitPatternLength(t *testing.T) {
	hit := &Hit{Indices: []int{4, 9, 14}}
	assert.Equal(t, 3, hit.PatternLength())
}
