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

import "gfm.run/go/inline/internal/entities"

// scanEntityReference recognizes "&name;" where name is a known HTML5
// named entity (spec.md §4.6). It returns nil (degrading '&' to a literal
// punctuation byte) if the name is unrecognized or unterminated.
func scanEntityReference(src []byte, pos int) *Inline {
	if pos >= len(src) || src[pos] != '&' {
		return nil
	}
	i := pos + 1
	start := i
	for i < len(src) && isEntityNameByte(src[i]) {
		i++
	}
	if i >= len(src) || src[i] != ';' || i == start {
		return nil
	}
	name := string(src[start:i])
	if _, ok := entities.Lookup(name); !ok {
		return nil
	}
	return newLeaf(EntityReferenceKind, pos, i+1)
}

func isEntityNameByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// scanNumericCharacterReference recognizes "&#NNN;" (1-7 decimal digits)
// or "&#xHHH;"/"&#XHHH;" (1-6 hex digits), per spec.md §4.6.
func scanNumericCharacterReference(src []byte, pos int) *Inline {
	if pos+2 >= len(src) || src[pos] != '&' || src[pos+1] != '#' {
		return nil
	}
	i := pos + 2
	hex := false
	if i < len(src) && (src[i] == 'x' || src[i] == 'X') {
		hex = true
		i++
	}
	digitsStart := i
	maxDigits := 7
	isDigit := isASCIIDigit
	if hex {
		maxDigits = 6
		isDigit = isHexDigitByte
	}
	for i < len(src) && i-digitsStart < maxDigits && isDigit(src[i]) {
		i++
	}
	if i == digitsStart || i >= len(src) || src[i] != ';' {
		return nil
	}
	return newLeaf(NumericCharacterReferenceKind, pos, i+1)
}

func isHexDigitByte(b byte) bool {
	return isASCIIDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
