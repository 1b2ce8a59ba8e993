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


package core

import "errors"

// Request validation errors
var (
	// ErrInvalidRequest indicates a search Request failed validation.
	ErrInvalidRequest = errors.New("invalid search request")

	// ErrEmptyPattern indicates the encoded pattern has no letters.
	ErrEmptyPattern = errors.New("pattern is empty after encoding")

	// ErrInvalidSkipRange indicates SkipMin/SkipMax do not form a valid range.
	ErrInvalidSkipRange = errors.New("skip range must satisfy 1 <= min <= max")

	// ErrNoDirection indicates neither search direction was selected.
	ErrNoDirection = errors.New("at least one search direction required")

	// ErrInvalidMaxHits indicates a non-positive result cap.
	ErrInvalidMaxHits = errors.New("max hits must be positive")
)
