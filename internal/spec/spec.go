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

// Package spec provides the conformance fixture used to check the inline
// parser's tree shape against known-good examples, in the style of the
// CommonMark specification's own (markdown, html) example suite.
package spec

import (
	_ "embed"
	"encoding/json"
	"strings"

	"gfm.run/go/inline"
)

// Example is a single conformance example: a run of inline Markdown
// source and the s-expression form of the tree [inline.Parse] must
// produce for it (see [TreeString]).
type Example struct {
	Name          string
	Markdown      string
	AtStartOfLine bool
	Tree          string
}

//go:embed fixtures.json
var fixtureData []byte

// Load returns the conformance examples.
func Load() ([]Example, error) {
	var examples []Example
	if err := json.Unmarshal(fixtureData, &examples); err != nil {
		return nil, err
	}
	return examples, nil
}

// TreeString renders n as a parenthesized s-expression of its kind names
// and leaf text, for use as a human-writable, diffable fixture format:
// (RootKind (WordKind "foo") (EmphasisKind (PunctuationKind "*") ...))
func TreeString(n *inline.Inline, source []byte) string {
	var b strings.Builder
	writeTree(&b, n, source)
	return b.String()
}

func writeTree(b *strings.Builder, n *inline.Inline, source []byte) {
	b.WriteByte('(')
	b.WriteString(n.Kind().String())
	if n.ChildCount() == 0 {
		b.WriteByte(' ')
		b.WriteString(strconvQuote(string(n.Text(source))))
	} else {
		for i := 0; i < n.ChildCount(); i++ {
			b.WriteByte(' ')
			writeTree(b, n.Child(i), source)
		}
	}
	b.WriteByte(')')
}

// strconvQuote quotes s the way Go source would, without pulling in
// strconv.Quote's full Unicode-escaping behavior, since fixture text is
// always printable Markdown source.
func strconvQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
