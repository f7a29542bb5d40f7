// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package inline

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeLabel normalizes a reference label for lookup purposes
// (spec.md §4.3): it strips leading and trailing spaces, tabs, and line
// endings, collapses consecutive internal whitespace to a single space,
// and performs a Unicode case fold. label should not include the
// surrounding brackets.
//
// Two labels that normalize to the same string refer to the same link
// reference definition, regardless of case or whitespace differences in
// how each was written.
func NormalizeLabel(label string) string {
	label = strings.Trim(label, " \t\n\r")
	var b strings.Builder
	space := false
	hasNonASCII := false
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch c {
		case ' ', '\t', '\n', '\r':
			space = true
			continue
		default:
			if space {
				b.WriteByte(' ')
				space = false
			}
			if c >= 0x80 {
				hasNonASCII = true
			}
			b.WriteByte(toLowerASCIIByte(c))
		}
	}
	s := b.String()
	if hasNonASCII {
		s = cases.Fold().String(s)
	}
	return s
}
