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


// Package sefaria fetches Hebrew texts from a Sefaria-style library API.
//
// The client implements corpus.TextSource: document shapes give chapter
// counts, text requests give the Hebrew verse list of one chapter. Requests
// are rate limited and retried with exponential backoff.
package sefaria
