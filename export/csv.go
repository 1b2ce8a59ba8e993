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


// Package export writes search results to interchange formats.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/tzofnat/elsgrep/core"
)

var csvHeader = []string{"document", "chapter", "verse", "skip", "start_index", "pattern_length"}

// WriteCSV writes hits as UTF-8 CSV, one row per hit, in the order given.
func WriteCSV(w io.Writer, hits []*core.Hit) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, hit := range hits {
		record := []string{
			hit.Ref.Document,
			strconv.Itoa(hit.Ref.Chapter),
			strconv.Itoa(hit.Ref.Verse),
			strconv.Itoa(hit.Skip),
			strconv.Itoa(hit.Start),
			strconv.Itoa(hit.PatternLength()),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
