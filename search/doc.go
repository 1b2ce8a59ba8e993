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


// Package search implements the equidistant letter sequence engine.
//
// A Searcher scans an immutable corpus for a pattern at every skip in a
// requested range, in either or both reading directions. Candidate start
// positions come from the corpus position index for the pattern's first
// letter, so only plausible starts are ever verified.
//
// Hits are returned in a deterministic order: skip ascending, forward pass
// before backward pass within a skip, then start position ascending. That
// ordering holds whether the skip range is scanned sequentially or
// partitioned across a worker pool.
package search
