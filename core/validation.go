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

import "fmt"

// ValidateRequest validates a search Request according to domain rules.
//
// Validation rules:
//   - Pattern must contain at least one letter
//   - SkipMin must be >= 1 and SkipMax >= SkipMin
//   - At least one of Forward/Backward must be set
//   - MaxHits must be positive
//
// Every rule is checked before any search executes; a failed rule is
// reported with the offending values so the caller can correct its input.
func ValidateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidRequest)
	}

	if len(req.Pattern) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, ErrEmptyPattern)
	}

	if req.SkipMin < 1 || req.SkipMax < req.SkipMin {
		return fmt.Errorf("%w: %w: min=%d max=%d",
			ErrInvalidRequest, ErrInvalidSkipRange, req.SkipMin, req.SkipMax)
	}

	if !req.Forward && !req.Backward {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, ErrNoDirection)
	}

	if req.MaxHits < 1 {
		return fmt.Errorf("%w: %w: got %d", ErrInvalidRequest, ErrInvalidMaxHits, req.MaxHits)
	}

	return nil
}
