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


// Package hebrew provides the canonical consonant alphabet, text
// normalization, and Latin-to-Hebrew pattern encoding.
//
// Normalization projects raw verse text down to the 22 canonical consonants:
// vowel points, cantillation marks, punctuation, and separators are dropped,
// and the five word-final letter forms are rewritten to their medial forms.
// Encoding turns a free-text search token into a canonical letter sequence
// using greedy longest-match transliteration.
//
// Both operations are pure and deterministic. Characters without a mapping
// are dropped silently, but the dropped count is reported so callers can
// surface it as telemetry.
package hebrew
