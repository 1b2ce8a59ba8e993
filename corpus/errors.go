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


package corpus

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceRequired is returned when a text source is not provided.
	ErrSourceRequired = errors.New("text source required")

	// ErrNoDocuments is returned when Build is given an empty document list.
	ErrNoDocuments = errors.New("at least one document required")
)

// SourceError reports a text-source failure for one document or chapter.
// Chapter is zero when the failure occurred before any chapter was requested
// (for example while resolving the document's shape). The corpus build may be
// retried at the granularity of the named document.
type SourceError struct {
	Document string
	Chapter  int
	Err      error
}

func (e *SourceError) Error() string {
	if e.Chapter == 0 {
		return fmt.Sprintf("text source failed for document %q: %v", e.Document, e.Err)
	}
	return fmt.Sprintf("text source failed for %s chapter %d: %v", e.Document, e.Chapter, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
