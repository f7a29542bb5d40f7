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

// scanBackslashEscape recognizes a backslash followed by one ASCII
// punctuation byte (spec.md §4.6). It returns nil if pos+1 is out of
// range or not punctuation, so the backslash falls back to a literal
// punctuation leaf.
func scanBackslashEscape(src []byte, pos int) *Inline {
	if pos+1 >= len(src) || !isASCIIPunctuation(src[pos+1]) {
		return nil
	}
	return newLeaf(BackslashEscapeKind, pos, pos+2)
}
