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
	"fmt"
	"os"

	"gfm.run/go/inline"
	"gfm.run/go/inline/format"
)

func Example() {
	source := []byte("Hello, **World**!")
	root := inline.Parse(source, true)

	// Format re-emits the parsed span verbatim; Parse never discards or
	// rewrites bytes.
	format.Format(os.Stdout, root, source)
	fmt.Println()
	// Output:
	// Hello, **World**!
}

// ExampleWalk collects the destination of every link in a run of inline
// source.
func ExampleWalk() {
	source := []byte("See [the docs](https://example.com/docs) or <https://example.com/>.")
	root := inline.Parse(source, true)

	var destinations []string
	inline.Walk(root, &inline.WalkOptions{
		Pre: func(c *inline.Cursor) bool {
			switch c.Node().Kind() {
			case inline.InlineLinkKind:
				for i := 0; i < c.Node().ChildCount(); i++ {
					if child := c.Node().Child(i); child.Kind() == inline.LinkDestinationKind {
						destinations = append(destinations, string(child.Text(source)))
					}
				}
			case inline.URIAutolinkKind:
				text := string(c.Node().Text(source))
				destinations = append(destinations, text[1:len(text)-1])
			}
			return true
		},
	})

	for _, dest := range destinations {
		fmt.Println(dest)
	}
	// Output:
	// https://example.com/docs
	// https://example.com/
}
