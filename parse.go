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

import "unicode/utf8"

// Parse parses one run of inline-level Markdown source, returning the
// single [RootKind] node that covers it. Every byte of source is covered
// by exactly one leaf descendant, with spans given in terms of source
// itself; Parse never fails, since the inline grammar is total
// (unrecognized delimiter sequences degrade to literal punctuation) and
// never rewrites bytes (a literal NUL is just another word byte; a
// renderer that cares about CommonMark's NUL-to-U+FFFD output convention
// applies it when it serializes text, not here).
//
// atStartOfLine should be true when source begins a new block, matching
// the one boolean flag spec.md §6 calls for. The flanking rules treat the
// start of source as whitespace whether the flag is true or false, so the
// flag does not change the resulting tree.
func Parse(source []byte, atStartOfLine bool) *Inline {
	prevBoundary := classWhitespace
	if atStartOfLine {
		prevBoundary = classStartOfLine
	}
	children := parseInlineItems(source, 0, len(source), prevBoundary, classWhitespace, false)
	return newNode(RootKind, 0, len(source), children)
}

// parseInlineItems is the single recursive-descent pass over
// fullSrc[start:end] that produces a finished flat child sequence:
// delimiter runs, code spans, links and images, autolinks, raw HTML,
// entities, escapes, breaks, and plain leaves, in source order, with
// emphasis/strong/strikethrough resolved via [resolveEmphasis] at the
// end.
//
// prevBoundary and nextBoundary supply the character class to use for
// flanking-rule purposes just before start and just at/after end, since
// a sub-range parsed for link text or an image description is flanked
// by the real bytes ('[', '!', ']') that sit outside [start, end) in the
// full source, not by true start/end of input.
//
// inLink disables forming ordinary (non-image) links while set, which is
// how this module enforces the non-nesting invariant that link text may
// contain images but not further links.
func parseInlineItems(fullSrc []byte, start, end int, prevBoundary, nextBoundary charClass, inLink bool) []*Inline {
	src := fullSrc[:end]
	pos := start
	lineStart := start
	prevClass := prevBoundary

	var items []*emItem
	var openers []bracketOpener

	appendText := func(n *Inline) {
		items = append(items, newTextItem(n))
	}

	for pos < end {
		b := src[pos]

		switch {
		case b == '\n' || b == '\r':
			escapedBackslash := false
			if n := len(items); n > 0 && !items[n-1].isDelim {
				if last := items[n-1].node; last.Kind() == BackslashEscapeKind && last.End() == pos {
					escapedBackslash = true
				}
			}
			brk := scanLineBreak(src, pos, lineStart, escapedBackslash)
			appendText(brk)
			pos = brk.End()
			lineStart = pos
			prevClass = classWhitespace

		case isWhitespaceByte(b):
			runEnd := pos
			for runEnd < end && isWhitespaceByte(src[runEnd]) && src[runEnd] != '\n' && src[runEnd] != '\r' {
				runEnd++
			}
			if runEnd < end && (src[runEnd] == '\n' || src[runEnd] == '\r') {
				// Leave two or more trailing spaces for the line-break
				// branch to absorb into a hard break; anything before
				// them, or a run too short to form one, stays an
				// ordinary whitespace leaf.
				spaces := 0
				for runEnd-1-spaces >= pos && src[runEnd-1-spaces] == ' ' {
					spaces++
				}
				if spaces >= 2 {
					if runEnd-spaces > pos {
						appendText(newLeaf(WhitespaceKind, pos, runEnd-spaces))
					}
					pos = runEnd
					continue
				}
			}
			appendText(newLeaf(WhitespaceKind, pos, runEnd))
			pos = runEnd
			prevClass = classWhitespace

		case b == '\\':
			if pos+1 < end && (src[pos+1] == '\n' || src[pos+1] == '\r') {
				// Leave the backslash for the line-break branch; '\'
				// before a line ending forms a hard break, not an
				// escape.
				pos++
				continue
			}
			if esc := scanBackslashEscape(src, pos); esc != nil {
				appendText(esc)
				pos = esc.End()
				prevClass = classPunctuation
				continue
			}
			appendText(newLeaf(PunctuationKind, pos, pos+1))
			pos++
			prevClass = classPunctuation

		case b == '`':
			if node, next := scanCodeSpan(src, pos); node != nil {
				appendText(node)
				pos = next
				prevClass = classify(src[next-1])
				continue
			}
			appendText(newLeaf(PunctuationKind, pos, pos+1))
			pos++
			prevClass = classPunctuation

		case b == '&':
			if ref := scanEntityReference(src, pos); ref != nil {
				appendText(ref)
				pos = ref.End()
				prevClass = classOther
				continue
			}
			if ref := scanNumericCharacterReference(src, pos); ref != nil {
				appendText(ref)
				pos = ref.End()
				prevClass = classOther
				continue
			}
			appendText(newLeaf(PunctuationKind, pos, pos+1))
			pos++
			prevClass = classPunctuation

		case b == '<':
			if node := scanURIAutolink(src, pos); node != nil {
				appendText(node)
				pos = node.End()
				prevClass = classOther
				continue
			}
			if node := scanEmailAutolink(src, pos); node != nil {
				appendText(node)
				pos = node.End()
				prevClass = classOther
				continue
			}
			if node := scanHTMLTag(src, pos); node != nil {
				appendText(node)
				pos = node.End()
				prevClass = classOther
				continue
			}
			appendText(newLeaf(PunctuationKind, pos, pos+1))
			pos++
			prevClass = classPunctuation

		case b == '!':
			if pos+1 < end && src[pos+1] == '[' {
				openers = append(openers, bracketOpener{itemIndex: len(items), bracketStart: pos, isImage: true})
				appendText(newLeaf(PunctuationKind, pos, pos+2))
				pos += 2
				prevClass = classPunctuation
				continue
			}
			appendText(newLeaf(PunctuationKind, pos, pos+1))
			pos++
			prevClass = classPunctuation

		case b == '[':
			if !inLink {
				openers = append(openers, bracketOpener{itemIndex: len(items), bracketStart: pos, isImage: false})
			}
			appendText(newLeaf(PunctuationKind, pos, pos+1))
			pos++
			prevClass = classPunctuation

		case b == ']':
			if len(openers) == 0 {
				appendText(newLeaf(PunctuationKind, pos, pos+1))
				pos++
				prevClass = classPunctuation
				continue
			}
			opener := openers[len(openers)-1]
			openers = openers[:len(openers)-1]
			node, next := closeBracket(src, opener, pos)
			items = append(items[:opener.itemIndex], newTextItem(node))
			pos = next
			prevClass = classify(src[next-1])

		case b == '*' || b == '_' || b == '~':
			ch := b
			runEnd := pos
			for runEnd < end && src[runEnd] == ch {
				runEnd++
			}
			nextClass := followingClassBounded(src, runEnd, end, nextBoundary)
			canOpen, canClose := computeFlanking(ch, prevClass, nextClass)
			items = append(items, newDelimItem(ch, pos, runEnd, canOpen, canClose))
			pos = runEnd
			prevClass = classPunctuation

		case isASCIIPunctuation(b):
			appendText(newLeaf(PunctuationKind, pos, pos+1))
			pos++
			prevClass = classPunctuation

		default:
			if node := scanExtendedAutolink(src, pos, prevClass); node != nil {
				appendText(node)
				pos = node.End()
				prevClass = classOther
				continue
			}
			if isASCIIDigit(b) {
				runEnd := pos
				for runEnd < end && isASCIIDigit(src[runEnd]) {
					runEnd++
				}
				appendText(newLeaf(DigitsKind, pos, runEnd))
				pos = runEnd
				prevClass = classOther
				continue
			}
			runEnd := pos
			for runEnd < end {
				c := src[runEnd]
				if isWhitespaceByte(c) || isASCIIPunctuation(c) || isASCIIDigit(c) {
					break
				}
				runEnd++
			}
			if runEnd == pos {
				runEnd = pos + 1
			}
			appendText(newLeaf(WordKind, pos, runEnd))
			pos = runEnd
			prevClass = classOther
		}
	}

	return resolveEmphasis(items)
}

// followingClassBounded classifies the byte at i for flanking purposes,
// treating i >= end as having the class boundary rather than assuming
// true end-of-input: a sub-parse bounded by a closing ']' is followed by
// real punctuation, not nothing.
func followingClassBounded(src []byte, i, end int, boundary charClass) charClass {
	if i >= end {
		return boundary
	}
	b := src[i]
	if b < 0x80 {
		return classify(b)
	}
	r, _ := utf8.DecodeRune(src[i:end])
	return classifyRune(r)
}

// computeFlanking applies the CommonMark left-/right-flanking delimiter
// run rules (spec.md §4.1) and the additional restriction on '_' runs
// that prevents intraword underscore emphasis. '~' (GFM strikethrough)
// follows the same rule as '*'.
func computeFlanking(ch byte, prevClass, nextClass charClass) (canOpen, canClose bool) {
	isWhitespaceLike := func(c charClass) bool { return c == classWhitespace || c == classStartOfLine }
	isPunctuationLike := func(c charClass) bool { return c == classPunctuation }

	leftFlanking := !isWhitespaceLike(nextClass) &&
		(!isPunctuationLike(nextClass) || isWhitespaceLike(prevClass) || isPunctuationLike(prevClass))
	rightFlanking := !isWhitespaceLike(prevClass) &&
		(!isPunctuationLike(prevClass) || isWhitespaceLike(nextClass) || isPunctuationLike(nextClass))

	if ch == '_' {
		canOpen = leftFlanking && (!rightFlanking || isPunctuationLike(prevClass))
		canClose = rightFlanking && (!leftFlanking || isPunctuationLike(nextClass))
		return canOpen, canClose
	}
	return leftFlanking, rightFlanking
}
