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

// emItem is one element of the flat sequence gathered while scanning a
// single run of inline content (spec.md §4.2's "inline element stream").
// Non-delimiter items (code spans, links, words, ...) pass through
// [resolveEmphasis] untouched; delimiter items get paired off, shrinking
// from the inside out, per the CommonMark delimiter-stack algorithm.
type emItem struct {
	node *Inline

	isDelim           bool
	ch                byte // '*', '_', or '~'
	length            int  // remaining unconsumed run length
	canOpen, canClose bool
}

func newTextItem(node *Inline) *emItem {
	return &emItem{node: node}
}

func newDelimItem(ch byte, start, end int, canOpen, canClose bool) *emItem {
	return &emItem{
		node:     newLeaf(PunctuationKind, start, end),
		isDelim:  true,
		ch:       ch,
		length:   end - start,
		canOpen:  canOpen,
		canClose: canClose,
	}
}

// resolveEmphasis pairs up compatible delimiter runs in items, replacing
// matched ranges with emphasis/strong/strikethrough wrapper nodes, and
// returns the resulting flat child sequence. It never fails: delimiter
// runs with no match degrade to literal punctuation bytes.
func resolveEmphasis(items []*emItem) []*Inline {
	for i := 0; i < len(items); {
		closer := items[i]
		if !closer.isDelim || !closer.canClose || !isEmphChar(closer.ch) {
			i++
			continue
		}
		matched := false
		for j := i - 1; j >= 0; j-- {
			opener := items[j]
			if !opener.isDelim || opener.ch != closer.ch || !opener.canOpen {
				continue
			}
			if !lengthsCompatible(opener, closer) {
				continue
			}

			n := consumeCount(opener, closer)
			wrapper := buildEmphasisWrapper(opener, closer, n, items[j+1:i])

			rebuilt := make([]*emItem, 0, len(items))
			rebuilt = append(rebuilt, items[:j]...)
			if opener.length > 0 {
				rebuilt = append(rebuilt, opener)
			}
			rebuilt = append(rebuilt, wrapper)
			newI := len(rebuilt)
			if closer.length > 0 {
				rebuilt = append(rebuilt, closer)
			}
			rebuilt = append(rebuilt, items[i+1:]...)

			items = rebuilt
			i = newI
			matched = true
			break
		}
		if !matched {
			i++
		}
	}
	return flattenEmItems(items)
}

func isEmphChar(ch byte) bool {
	return ch == '*' || ch == '_' || ch == '~'
}

// lengthsCompatible applies CommonMark rule 9/10: a delimiter run that can
// both open and close cannot pair when the combined run lengths are a
// multiple of three unless both are. Strikethrough has no such rule in
// GFM.
func lengthsCompatible(opener, closer *emItem) bool {
	if opener.ch == '~' {
		return true
	}
	if !((opener.canOpen && opener.canClose) || (closer.canOpen && closer.canClose)) {
		return true
	}
	sum := opener.length + closer.length
	if sum%3 != 0 {
		return true
	}
	return opener.length%3 == 0 && closer.length%3 == 0
}

// consumeCount reports how many characters a single match consumes from
// each side: two when both runs have at least two characters left
// (forming strong emphasis or a double-tilde strikethrough), one
// otherwise.
func consumeCount(opener, closer *emItem) int {
	if opener.length >= 2 && closer.length >= 2 {
		return 2
	}
	return 1
}

func buildEmphasisWrapper(opener, closer *emItem, n int, between []*emItem) *emItem {
	openerNode := opener.node
	closerNode := closer.node

	openerDelim := newLeaf(PunctuationKind, openerNode.End()-n, openerNode.End())
	closerDelim := newLeaf(PunctuationKind, closerNode.Start(), closerNode.Start()+n)

	children := make([]*Inline, 0, len(between)+2)
	children = append(children, openerDelim)
	for _, it := range between {
		children = append(children, emitItem(it)...)
	}
	children = append(children, closerDelim)

	kind := EmphasisKind
	switch {
	case opener.ch == '~':
		kind = StrikethroughKind
	case n == 2:
		kind = StrongEmphasisKind
	}

	wrapper := newNode(kind, openerDelim.Start(), closerDelim.End(), children)
	wrapper.variant = opener.ch

	opener.length -= n
	opener.node = newLeaf(PunctuationKind, openerNode.Start(), openerNode.End()-n)
	closer.length -= n
	closer.node = newLeaf(PunctuationKind, closerNode.Start()+n, closerNode.End())

	return newTextItem(wrapper)
}

// flattenEmItems converts the item sequence's final state into tree
// children. A delimiter item that never found (or only partially found) a
// match is never shown as one multi-byte leaf: each remaining byte becomes
// its own punctuation leaf, since nothing recognized it as a single
// multi-byte token.
func flattenEmItems(items []*emItem) []*Inline {
	out := make([]*Inline, 0, len(items))
	for _, it := range items {
		out = append(out, emitItem(it)...)
	}
	return out
}

// emitItem renders a single sequence item as its final tree form. An
// unmatched (or partially matched) delimiter run has no multi-byte token
// to its name, so it comes out one punctuation byte at a time.
func emitItem(it *emItem) []*Inline {
	if !it.isDelim || it.length == 0 {
		return []*Inline{it.node}
	}
	start, end := it.node.Start(), it.node.End()
	out := make([]*Inline, 0, end-start)
	for b := start; b < end; b++ {
		out = append(out, newLeaf(PunctuationKind, b, b+1))
	}
	return out
}
