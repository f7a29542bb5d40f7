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

	"golang.org/x/net/html/atom"
)

// scanHTMLTag recognizes one of the six raw HTML span forms at pos
// (spec.md §4.5): an open tag, a closing tag, an HTML comment, a
// processing instruction, a declaration, or a CDATA section. It returns
// nil if none of the forms match.
func scanHTMLTag(src []byte, pos int) *Inline {
	if pos >= len(src) || src[pos] != '<' {
		return nil
	}
	i := pos + 1
	if i >= len(src) {
		return nil
	}
	switch src[i] {
	case '?':
		end := scanProcessingInstruction(src, i+1)
		if end < 0 {
			return nil
		}
		return newLeaf(HTMLTagKind, pos, end)
	case '!':
		end := scanDeclarationLike(src, i+1)
		if end < 0 {
			return nil
		}
		return newLeaf(HTMLTagKind, pos, end)
	case '/':
		end := scanHTMLClosingTag(src, i)
		if end < 0 {
			return nil
		}
		return newLeaf(HTMLTagKind, pos, end)
	default:
		end := scanHTMLOpenTag(src, i)
		if end < 0 {
			return nil
		}
		return newLeaf(HTMLTagKind, pos, end)
	}
}

// scanProcessingInstruction scans the remainder of a processing
// instruction after "<?", returning the end offset or -1.
func scanProcessingInstruction(src []byte, i int) int {
	for {
		j := indexByteFrom(src, i, '?')
		if j < 0 {
			return -1
		}
		if j+1 < len(src) && src[j+1] == '>' {
			return j + 2
		}
		i = j + 1
	}
}

// scanDeclarationLike scans a declaration, comment, or CDATA section
// after "<!".
func scanDeclarationLike(src []byte, i int) int {
	switch {
	case i < len(src) && isASCIILetter(src[i]):
		j := indexByteFrom(src, i, '>')
		if j < 0 {
			return -1
		}
		return j + 1
	case hasBytesPrefix(src, i, "--"):
		i += 2
		if hasBytesPrefix(src, i, ">") || hasBytesPrefix(src, i, "->") {
			return -1
		}
		for {
			j := indexByteFrom(src, i, '-')
			if j < 0 {
				return -1
			}
			if hasBytesPrefix(src, j, "-->") {
				return j + 3
			}
			if hasBytesPrefix(src, j, "--") {
				return -1
			}
			i = j + 1
		}
	case hasBytesPrefix(src, i, "[CDATA["):
		i += len("[CDATA[")
		j := indexOfFrom(src, i, "]]>")
		if j < 0 {
			return -1
		}
		return j + 3
	default:
		return -1
	}
}

// scanHTMLOpenTag parses an open tag sans the leading '<', starting at
// the first byte after '<'.
func scanHTMLOpenTag(src []byte, i int) int {
	i = scanHTMLTagName(src, i)
	if i < 0 {
		return -1
	}
	for {
		j := skipHTMLSpace(src, i)
		if j < 0 {
			return -1
		}
		i = j
		if i < len(src) && src[i] == '/' {
			i++
			if i >= len(src) || src[i] != '>' {
				return -1
			}
			return i + 1
		}
		if i < len(src) && src[i] == '>' {
			return i + 1
		}
		next := scanHTMLAttribute(src, i)
		if next < 0 || next == i {
			return -1
		}
		i = next
	}
}

// scanHTMLClosingTag parses a closing tag sans the leading '<', starting
// at the '/' byte.
func scanHTMLClosingTag(src []byte, i int) int {
	if i >= len(src) || src[i] != '/' {
		return -1
	}
	i++
	i = scanHTMLTagName(src, i)
	if i < 0 {
		return -1
	}
	i = skipHTMLSpace(src, i)
	if i < 0 || i >= len(src) || src[i] != '>' {
		return -1
	}
	return i + 1
}

func scanHTMLTagName(src []byte, i int) int {
	if i >= len(src) || !isASCIILetter(src[i]) {
		return -1
	}
	i++
	for i < len(src) && (isASCIILetter(src[i]) || isASCIIDigit(src[i]) || src[i] == '-') {
		i++
	}
	return i
}

func scanHTMLAttribute(src []byte, i int) int {
	if i >= len(src) {
		return -1
	}
	c := src[i]
	if !isASCIILetter(c) && c != '_' && c != ':' {
		return -1
	}
	i++
	for i < len(src) && (isASCIILetter(src[i]) || isASCIIDigit(src[i]) || strings.IndexByte("_.:-", src[i]) >= 0) {
		i++
	}

	mark := i
	j := skipHTMLSpace(src, i)
	if j < 0 || j >= len(src) || src[j] != '=' {
		return mark
	}
	i = j + 1
	i = skipHTMLSpace(src, i)
	if i < 0 || i >= len(src) {
		return -1
	}
	switch c := src[i]; {
	case c == '\'':
		j := indexByteFrom(src, i+1, '\'')
		if j < 0 {
			return -1
		}
		return j + 1
	case c == '"':
		j := indexByteFrom(src, i+1, '"')
		if j < 0 {
			return -1
		}
		return j + 1
	case isUnquotedAttributeValueByte(c):
		i++
		for i < len(src) && isUnquotedAttributeValueByte(src[i]) {
			i++
		}
		return i
	default:
		return -1
	}
}

// skipHTMLSpace skips zero or more CommonMark whitespace bytes, per the
// [whitespace] production used throughout raw HTML grammar.
//
// [whitespace]: https://spec.commonmark.org/0.30/#whitespace
func skipHTMLSpace(src []byte, i int) int {
	for i < len(src) && isWhitespaceByte(src[i]) {
		i++
	}
	return i
}

func isUnquotedAttributeValueByte(c byte) bool {
	return !isWhitespaceByte(c) && strings.IndexByte("\"'=<>`", c) < 0
}

func indexByteFrom(src []byte, i int, b byte) int {
	if i > len(src) {
		return -1
	}
	j := indexByte(src[i:], b)
	if j < 0 {
		return -1
	}
	return i + j
}

func indexByte(src []byte, b byte) int {
	for i, c := range src {
		if c == b {
			return i
		}
	}
	return -1
}

func indexOfFrom(src []byte, i int, s string) int {
	if i > len(src) {
		return -1
	}
	for k := i; k+len(s) <= len(src); k++ {
		if string(src[k:k+len(s)]) == s {
			return k
		}
	}
	return -1
}

func hasBytesPrefix(src []byte, i int, prefix string) bool {
	if i < 0 || i+len(prefix) > len(src) {
		return false
	}
	return string(src[i:i+len(prefix)]) == prefix
}

// TagAtom looks up the element name of a raw HTML tag node using the
// WHATWG atom table, returning [atom.Atom](0) if the tag name is not a
// well-known HTML element. n must have kind [HTMLTagKind].
func TagAtom(n *Inline, source []byte) atom.Atom {
	text := n.Text(source)
	start := 1
	if start < len(text) && (text[start] == '/' || text[start] == '!' || text[start] == '?') {
		start++
	}
	end := start
	for end < len(text) && (isASCIILetter(text[end]) || isASCIIDigit(text[end]) || text[end] == '-') {
		end++
	}
	if end == start {
		return 0
	}
	return atom.Lookup(lowerASCIICopy(text[start:end]))
}

func lowerASCIICopy(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = toLowerASCIIByte(c)
	}
	return out
}
