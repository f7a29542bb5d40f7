// Copyright 2024 Ross Light
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

package format_test

import (
	"bytes"
	"testing"

	"gfm.run/go/inline"
	"gfm.run/go/inline/format"
)

// TestEscapeText checks that EscapeText's output, re-parsed, never forms
// any of the Markdown constructs its source text happened to spell out:
// every leaf should come back as plain content instead.
func TestEscapeText(t *testing.T) {
	tests := []string{
		"plain text",
		"*not emphasis*",
		"**not strong**",
		"~~not strikethrough~~",
		"[not a link](nope)",
		"![not an image](nope)",
		"a & b < c",
		"under_score_word",
		"back`tick`span",
		"<not@a.autolink>",
	}
	for _, text := range tests {
		var buf bytes.Buffer
		if _, err := format.EscapeText(&buf, []byte(text)); err != nil {
			t.Fatalf("EscapeText(%q): %v", text, err)
		}
		escaped := buf.Bytes()

		root := inline.Parse(escaped, true)
		var bad []inline.Kind
		inline.Walk(root, &inline.WalkOptions{
			Pre: func(c *inline.Cursor) bool {
				switch k := c.Node().Kind(); k {
				case inline.EmphasisKind, inline.StrongEmphasisKind, inline.StrikethroughKind,
					inline.CodeSpanKind, inline.InlineLinkKind, inline.ShortcutLinkKind,
					inline.FullReferenceLinkKind, inline.CollapsedReferenceLinkKind, inline.ImageKind,
					inline.URIAutolinkKind, inline.EmailAutolinkKind, inline.ExtendedAutolinkKind,
					inline.HTMLTagKind, inline.EntityReferenceKind, inline.NumericCharacterReferenceKind:
					bad = append(bad, k)
				}
				return true
			},
		})
		if len(bad) > 0 {
			t.Errorf("EscapeText(%q) = %q, which re-parses as Markdown syntax (%v) instead of literal text", text, escaped, bad)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"hello world",
		"*foo* and **bar** and ~~baz~~",
		"[a](b) ![c](d) [e][f]",
		"line one\nline two  \nline three",
	}
	for _, src := range tests {
		source := []byte(src)
		root := inline.Parse(source, true)
		var buf bytes.Buffer
		if err := format.Format(&buf, root, source); err != nil {
			t.Fatalf("Format(%q): %v", src, err)
		}
		if got := buf.String(); got != src {
			t.Errorf("Format(Parse(%q)) = %q; want %q", src, got, src)
		}
	}
}
