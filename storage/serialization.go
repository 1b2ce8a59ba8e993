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


package storage

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/tzofnat/elsgrep/core"
)

var versesMUS = ord.NewSliceSer[string](ord.String)

// ChapterTextMUS is the MUS serializer for ChapterText.
// FetchedAt is stored as Unix microseconds.
var ChapterTextMUS = chapterTextMUS{}

type chapterTextMUS struct{}

func (chapterTextMUS) Marshal(v ChapterText, bs []byte) (n int) {
	n = varint.Uint64.Marshal(uint64(v.ID), bs)
	n += ord.String.Marshal(v.Document, bs[n:])
	n += varint.Int.Marshal(v.Chapter, bs[n:])
	n += versesMUS.Marshal(v.Verses, bs[n:])
	n += varint.Int64.Marshal(v.FetchedAt.UnixMicro(), bs[n:])
	return n
}

func (chapterTextMUS) Unmarshal(bs []byte) (v ChapterText, n int, err error) {
	var n1 int
	var id uint64
	id, n, err = varint.Uint64.Unmarshal(bs)
	if err != nil {
		return v, n, err
	}
	v.ID = core.ID(id)
	v.Document, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return v, n, err
	}
	v.Chapter, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return v, n, err
	}
	v.Verses, n1, err = versesMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return v, n, err
	}
	var micros int64
	micros, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return v, n, err
	}
	v.FetchedAt = time.UnixMicro(micros).UTC()
	return v, n, nil
}

func (chapterTextMUS) Size(v ChapterText) (size int) {
	size = varint.Uint64.Size(uint64(v.ID))
	size += ord.String.Size(v.Document)
	size += varint.Int.Size(v.Chapter)
	size += versesMUS.Size(v.Verses)
	size += varint.Int64.Size(v.FetchedAt.UnixMicro())
	return size
}

// MarshalChapterText serializes a ChapterText to bytes.
func MarshalChapterText(text *ChapterText) []byte {
	buf := make([]byte, ChapterTextMUS.Size(*text))
	ChapterTextMUS.Marshal(*text, buf)
	return buf
}

// UnmarshalChapterText deserializes a ChapterText from bytes.
func UnmarshalChapterText(data []byte) (*ChapterText, error) {
	text, _, err := ChapterTextMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &text, nil
}

// MarshalChapterCount serializes a chapter count to bytes.
func MarshalChapterCount(count int) []byte {
	buf := make([]byte, varint.Int.Size(count))
	varint.Int.Marshal(count, buf)
	return buf
}

// UnmarshalChapterCount deserializes a chapter count from bytes.
func UnmarshalChapterCount(data []byte) (int, error) {
	count, _, err := varint.Int.Unmarshal(data)
	return count, err
}
