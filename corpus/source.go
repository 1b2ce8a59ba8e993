package corpus

import "context"

// TextSource supplies raw verse text for corpus construction.
// Implementations must be safe for concurrent use.
type TextSource interface {
	// ChapterCount returns the number of structural chapters in a document.
	ChapterCount(ctx context.Context, document string) (int, error)

	// Verses returns the ordered raw verse texts of one chapter. Verses may
	// contain vowel points, cantillation marks, and punctuation; callers
	// normalize them. A verse that arrives as a single fragment is still a
	// one-element slice, so the result shape is always []string. An empty
	// slice is a valid zero contribution, not an error.
	Verses(ctx context.Context, document string, chapter int) ([]string, error)
}
