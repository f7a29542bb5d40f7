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

// bracketOpener records a still-open '[' or '![' seen by the main scan
// (parse.go), along with where it sits in the flat item sequence being
// built so a successful match can splice a finished node back in.
type bracketOpener struct {
	itemIndex   int
	bracketStart int
	isImage     bool
}

// closeBracket is called when the scanner in parse.go finds a ']' that
// matches opener. It attempts the inline, collapsed-reference, and full-
// reference tails in that order (spec.md §4.4) and falls back to the
// shortcut shape, which always succeeds structurally: this module emits
// link/image nodes for every balanced bracket pair and leaves resolving a
// shortcut or reference label against a definition table to the caller
// (spec.md's Non-goals place that downstream).
//
// textEnd is the position of the matching ']'; closeBracket returns the
// finished node and the position just past its last consumed byte.
func closeBracket(src []byte, opener bracketOpener, textEnd int) (*Inline, int) {
	bracketStart := opener.bracketStart
	textStart := bracketStart + 1
	if opener.isImage {
		textStart = bracketStart + 2
	}

	// Link text excludes further non-image links (non-nesting invariant);
	// image descriptions place no such restriction on their content.
	innerInLink := !opener.isImage
	textChildren := parseInlineItems(src, textStart, textEnd, classPunctuation, classPunctuation, innerInLink)
	textKind := LinkTextKind
	if opener.isImage {
		textKind = ImageDescriptionKind
	}

	children := make([]*Inline, 0, 8)
	if opener.isImage {
		children = append(children, newLeaf(PunctuationKind, bracketStart, bracketStart+2))
	} else {
		children = append(children, newLeaf(PunctuationKind, bracketStart, bracketStart+1))
	}
	children = append(children, newNode(textKind, textStart, textEnd, textChildren))
	children = append(children, newLeaf(PunctuationKind, textEnd, textEnd+1))

	pos := textEnd + 1
	if pos < len(src) && src[pos] == '(' {
		if extra, end, ok := parseInlineLinkTail(src, pos); ok {
			children = append(children, extra...)
			return finishLinkOrImage(opener, InlineShape, bracketStart, end, children), end
		}
	}
	if pos < len(src) && src[pos] == '[' {
		if pos+1 < len(src) && src[pos+1] == ']' {
			children = append(children,
				newLeaf(PunctuationKind, pos, pos+1),
				newLeaf(PunctuationKind, pos+1, pos+2))
			return finishLinkOrImage(opener, CollapsedReferenceShape, bracketStart, pos+2, children), pos + 2
		}
		if labelNode, end, ok := parseLinkLabel(src, pos); ok {
			children = append(children,
				newLeaf(PunctuationKind, pos, pos+1),
				labelNode,
				newLeaf(PunctuationKind, end-1, end))
			return finishLinkOrImage(opener, FullReferenceShape, bracketStart, end, children), end
		}
	}
	return finishLinkOrImage(opener, ShortcutShape, bracketStart, pos, children), pos
}

func finishLinkOrImage(opener bracketOpener, shape ImageVariant, start, end int, children []*Inline) *Inline {
	kind := ImageKind
	if !opener.isImage {
		switch shape {
		case InlineShape:
			kind = InlineLinkKind
		case FullReferenceShape:
			kind = FullReferenceLinkKind
		case CollapsedReferenceShape:
			kind = CollapsedReferenceLinkKind
		default:
			kind = ShortcutLinkKind
		}
	}
	n := newNode(kind, start, end, children)
	if opener.isImage {
		n.variant = uint8(shape)
	}
	return n
}

// parseInlineLinkTail parses "(" dest title ")" starting at the '(' byte,
// returning the child leaves to splice into the link/image node (in
// order: open-paren, optional whitespace, optional destination, optional
// whitespace, optional title, optional whitespace, close-paren) and the
// position just past the ')'.
func parseInlineLinkTail(src []byte, pos int) ([]*Inline, int, bool) {
	if pos >= len(src) || src[pos] != '(' {
		return nil, 0, false
	}
	start := pos
	children := []*Inline{newLeaf(PunctuationKind, pos, pos+1)}
	pos++

	if ws, next := scanLinkWhitespace(src, pos); next > pos {
		children = append(children, ws)
		pos = next
	}

	if pos < len(src) && src[pos] != ')' {
		dest, next, ok := parseLinkDestination(src, pos)
		if !ok {
			return nil, 0, false
		}
		children = append(children, dest)
		pos = next
	}

	if ws, next := scanLinkWhitespace(src, pos); next > pos {
		children = append(children, ws)
		pos = next
		if pos < len(src) && (src[pos] == '"' || src[pos] == '\'' || src[pos] == '(') {
			title, next, ok := parseLinkTitle(src, pos)
			if !ok {
				return nil, 0, false
			}
			children = append(children, title)
			pos = next
			if ws2, next2 := scanLinkWhitespace(src, pos); next2 > pos {
				children = append(children, ws2)
				pos = next2
			}
		}
	}

	if pos >= len(src) || src[pos] != ')' {
		return nil, 0, false
	}
	children = append(children, newLeaf(PunctuationKind, pos, pos+1))
	_ = start
	return children, pos + 1, true
}

func scanLinkWhitespace(src []byte, pos int) (*Inline, int) {
	i := pos
	for i < len(src) && (isWhitespaceByte(src[i])) {
		i++
	}
	if i == pos {
		return nil, pos
	}
	return newLeaf(WhitespaceKind, pos, i), i
}

// parseLinkDestination recognizes a link destination (spec.md §4.4):
// either "<...>" excluding unescaped '<', '>', or line endings, or a
// bare run excluding ASCII control characters, spaces, and unbalanced
// parentheses.
func parseLinkDestination(src []byte, pos int) (*Inline, int, bool) {
	if pos >= len(src) {
		return nil, 0, false
	}
	if src[pos] == '<' {
		i := pos + 1
		for i < len(src) {
			switch src[i] {
			case '\n':
				return nil, 0, false
			case '<':
				return nil, 0, false
			case '>':
				return newLeaf(LinkDestinationKind, pos, i+1), i + 1, true
			case '\\':
				if i+1 < len(src) {
					i += 2
					continue
				}
			}
			i++
		}
		return nil, 0, false
	}

	depth := 0
	i := pos
	for i < len(src) {
		b := src[i]
		switch {
		case b == '(':
			depth++
		case b == ')':
			if depth == 0 {
				goto done
			}
			depth--
		case b == '\\' && i+1 < len(src):
			i += 2
			continue
		case isWhitespaceByte(b) || isASCIIControlByte(b):
			goto done
		}
		i++
	}
done:
	if i == pos {
		return nil, pos, false
	}
	return newLeaf(LinkDestinationKind, pos, i), i, true
}

func isASCIIControlByte(b byte) bool {
	return b < 0x20 || b == 0x7f
}

// parseLinkTitle recognizes a link title delimited by '"', '\'', or a
// balanced "(...)" pair (spec.md §4.4). The returned node's span includes
// the delimiters.
//
// A title may contain a soft line break, but not a blank line (two line
// endings in a row with nothing but whitespace between them): that would
// make the title span multiple paragraphs, which CommonMark rejects
// outright rather than trim. pendingBreak tracks whether the byte just
// scanned ended a line with no content since the previous line ending; a
// second line ending while it is still true kills this title (and with
// it, per parseInlineLinkTail's ok return, the whole inline-link-tail
// attempt), letting the bracket fall back to a shorter or literal match.
func parseLinkTitle(src []byte, pos int) (*Inline, int, bool) {
	if pos >= len(src) {
		return nil, 0, false
	}
	want := src[pos]
	if want != '"' && want != '\'' && want != '(' {
		return nil, 0, false
	}
	if want == '(' {
		want = ')'
	}
	i := pos + 1
	pendingBreak := false
	for i < len(src) {
		switch {
		case src[i] == want:
			return newLeaf(LinkTitleKind, pos, i+1), i + 1, true
		case src[i] == '(' && want == ')':
			return nil, 0, false
		case src[i] == '\\' && i+1 < len(src):
			i += 2
			pendingBreak = false
			continue
		case src[i] == '\n' || src[i] == '\r':
			if pendingBreak {
				return nil, 0, false
			}
			pendingBreak = true
			if src[i] == '\r' && i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
		case isWhitespaceByte(src[i]):
			// Spaces/tabs between line endings don't clear pendingBreak
			// or count as content.
		default:
			pendingBreak = false
		}
		i++
	}
	return nil, 0, false
}

// parseLinkLabel recognizes the "[label]" form used by full reference
// links (spec.md §4.4): non-empty after trimming leading/trailing
// whitespace, no unescaped nested brackets, at most 999 characters
// between the brackets. pos is the position of the opening '['. The
// returned node spans only the label text, excluding both brackets; end
// is the position just past the closing ']'.
func parseLinkLabel(src []byte, pos int) (*Inline, int, bool) {
	if pos >= len(src) || src[pos] != '[' {
		return nil, 0, false
	}
	i := pos + 1
	labelStart := i
	for i < len(src) {
		switch src[i] {
		case ']':
			if i-labelStart > 999 {
				return nil, 0, false
			}
			if isAllWhitespace(src[labelStart:i]) {
				return nil, 0, false
			}
			return newLeaf(LinkLabelKind, labelStart, i), i + 1, true
		case '[':
			return nil, 0, false
		case '\\':
			if i+1 < len(src) {
				i += 2
				continue
			}
		}
		i++
	}
	return nil, 0, false
}

func isAllWhitespace(b []byte) bool {
	for _, c := range b {
		if !isWhitespaceByte(c) {
			return false
		}
	}
	return true
}
