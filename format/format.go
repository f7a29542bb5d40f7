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

// Package format provides functions for re-serializing a parsed inline
// tree and for escaping arbitrary text for safe insertion into
// CommonMark source.
package format

import (
	"io"

	"go4.org/bytereplacer"

	"gfm.run/go/inline"
)

// Format walks root depth-first and writes each leaf's verbatim source
// span to w, in order. Since an [inline.Inline] tree's leaves partition
// every byte of source exactly once, the result always equals
// source[root.Start():root.End()] for a well-formed tree -- but Format
// gets there by walking [inline.Walk] over the tree's actual structure
// rather than by taking that shortcut, so a leaf whose span was
// miscomputed relative to its siblings shows up as wrong output here,
// making the identity source == Format(Parse(source)) an executable check
// of the tree itself, not just of its outer span.
func Format(w io.Writer, root *inline.Inline, source []byte) error {
	ww := &errWriter{w: w}
	inline.Walk(root, &inline.WalkOptions{
		Pre: func(c *inline.Cursor) bool {
			if n := c.Node(); n.ChildCount() == 0 {
				ww.Write(n.Text(source))
			}
			return true
		},
	})
	return ww.err
}

// errWriter suppresses repeated write-error checks across a run of writes:
// once w.err is set, further writes are no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = w.w.Write(p)
	return n, w.err
}

// escaper batch-replaces the bytes that would otherwise be misread as
// CommonMark syntax (the ASCII punctuation set, including '&' and '<',
// which can start entity references and raw HTML) with their
// backslash-escaped form.
var escaper = bytereplacer.New(
	"!", `\!`, `"`, `\"`, "#", `\#`, "$", `\$`, "%", `\%`,
	"&", `\&`, "'", `\'`, "(", `\(`, ")", `\)`, "*", `\*`,
	"+", `\+`, ",", `\,`, "-", `\-`, ".", `\.`, "/", `\/`,
	":", `\:`, ";", `\;`, "<", `\<`, "=", `\=`, ">", `\>`,
	"?", `\?`, "@", `\@`, "[", `\[`, "\\", `\\`, "]", `\]`,
	"^", `\^`, "_", `\_`, "`", "\\`", "{", `\{`, "|", `\|`,
	"}", `\}`, "~", `\~`,
)

// EscapeText writes text to w with every byte that could be misread as
// CommonMark syntax escaped, so the result can be inserted into a larger
// document and re-parsed back to the original literal text. Unlike
// [Format], which re-emits already-valid source verbatim, EscapeText is
// for text a caller is assembling from some other source (a title, a
// user-supplied string) that has no guarantee of being safe as-is.
func EscapeText(w io.Writer, text []byte) (int, error) {
	return w.Write(escaper.Replace(text))
}
