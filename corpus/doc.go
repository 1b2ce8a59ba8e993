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


// Package corpus builds the searchable letter stream.
//
// Build concatenates the normalized text of every document in a fixed order
// into a single Corpus value: the letter stream, a parallel provenance array
// mapping each position to its source verse, and a position index from letter
// to its ascending stream positions. A Corpus is immutable once built and is
// safe for any number of concurrent searches.
//
// Text acquisition is delegated to a TextSource collaborator; failures there
// surface as *SourceError with enough context to retry a single document.
package corpus
