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

// scanCodeSpan attempts to parse a code span starting at a run of
// backticks at pos. It out-ranks emphasis and links by construction: the
// caller tries it before any other interpretation of '`'.
//
// On success it returns the finished node and the position just past the
// closing fence. On failure (no closing fence of matching length exists)
// it returns nil so the caller falls back to treating the backticks as
// literal punctuation, per spec.md §4.1's "a code-span-start emitted
// without a matching close must be rejected" rule.
func scanCodeSpan(src []byte, pos int) (*Inline, int) {
	fenceStart := pos
	n := backtickRunLength(src, pos)
	contentStart := pos + n

	i := contentStart
	for i < len(src) {
		if src[i] == '`' {
			closeStart := i
			closeLen := backtickRunLength(src, i)
			if closeLen == n {
				start := newLeaf(CodeSpanDelimiterKind, fenceStart, contentStart)
				end := newLeaf(CodeSpanDelimiterKind, closeStart, closeStart+closeLen)
				children := []*Inline{start}
				children = append(children, codeSpanContent(src, contentStart, closeStart)...)
				children = append(children, end)
				return newNode(CodeSpanKind, fenceStart, closeStart+closeLen, children), closeStart + closeLen
			}
			i += closeLen
			continue
		}
		i++
	}
	return nil, pos
}

func backtickRunLength(src []byte, pos int) int {
	n := 0
	for pos+n < len(src) && src[pos+n] == '`' {
		n++
	}
	return n
}

// codeSpanContent splits code span content into soft-line-break leaves and
// literal text runs; no further inline recursion occurs, per spec.md
// §4.3.
func codeSpanContent(src []byte, start, end int) []*Inline {
	var out []*Inline
	textStart := start
	for i := start; i < end; i++ {
		if src[i] == '\n' {
			if i > textStart {
				out = append(out, newLeaf(WordKind, textStart, i))
			}
			out = append(out, newLeaf(SoftLineBreakKind, i, i+1))
			textStart = i + 1
		}
	}
	if textStart < end {
		out = append(out, newLeaf(WordKind, textStart, end))
	}
	return out
}
