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


// Package storage defines the local chapter cache contract and its binary
// serialization.
//
// The cache holds raw chapter text fetched from the remote library so a
// corpus can be rebuilt without touching the network. Entries are stored per
// (document, chapter) and invalidated per document, matching the retry
// granularity of the corpus builder.
//
// Concrete backends live in subpackages (currently BadgerDB).
package storage
