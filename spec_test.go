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

package inline_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"gfm.run/go/inline"
	"gfm.run/go/inline/internal/spec"
)

// TestSpec runs the conformance fixtures in internal/spec against Parse,
// comparing the resulting tree shape (as rendered by [spec.TreeString])
// against each fixture's expected s-expression.
func TestSpec(t *testing.T) {
	examples, err := spec.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(examples) == 0 {
		t.Fatal("no conformance examples loaded")
	}

	for _, ex := range examples {
		ex := ex
		t.Run(ex.Name, func(t *testing.T) {
			source := []byte(ex.Markdown)
			root := inline.Parse(source, ex.AtStartOfLine)
			got := spec.TreeString(root, source)
			if diff := cmp.Diff(ex.Tree, got); diff != "" {
				t.Errorf("Parse(%q, %v) tree (-want +got):\n%s", ex.Markdown, ex.AtStartOfLine, diff)
			}
		})
	}
}

// TestSpecCoversEveryByte checks the defining invariant of the tree Parse
// produces: every byte of source is covered by exactly one leaf, in order,
// with no gaps or overlaps.
func TestSpecCoversEveryByte(t *testing.T) {
	examples, err := spec.Load()
	if err != nil {
		t.Fatal(err)
	}
	for _, ex := range examples {
		ex := ex
		t.Run(ex.Name, func(t *testing.T) {
			source := []byte(ex.Markdown)
			root := inline.Parse(source, ex.AtStartOfLine)
			pos := 0
			inline.Walk(root, &inline.WalkOptions{
				Pre: func(c *inline.Cursor) bool {
					n := c.Node()
					if n.ChildCount() > 0 {
						return true
					}
					if n.Start() != pos {
						t.Errorf("leaf %v starts at %d, want %d", n.Kind(), n.Start(), pos)
					}
					pos = n.End()
					return true
				},
			})
			if pos != len(source) {
				t.Errorf("leaves cover up to byte %d, want %d", pos, len(source))
			}
		})
	}
}
