package badger

import "fmt"

// Key prefixes for different data types
const (
	chapterPrefix = "chaptx"
	shapePrefix   = "docshp"
)

// makeChapterKey generates a key for a cached chapter.
// Format: prefix:document:chapter
func makeChapterKey(document string, chapter int) []byte {
	return []byte(fmt.Sprintf("%s:%s:%06d", chapterPrefix, document, chapter))
}

// makeDocumentChapterPrefix generates the key prefix covering every cached
// chapter of one document, used for per-document deletion.
func makeDocumentChapterPrefix(document string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", chapterPrefix, document))
}

// makeShapeKey generates a key for a document's chapter count.
func makeShapeKey(document string) []byte {
	return []byte(fmt.Sprintf("%s:%s", shapePrefix, document))
}
