// Copyright © 2024-2026 The palign authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package token splits raw phonetic strings into segment tokens. A token
// is a base character together with its combining diacritics, modifier
// letters and length marks; tie bars glue two base characters into one
// affricate token.
package token

import (
	"strings"
	"unicode"
)

// tie bars joining two base characters into one segment
const (
	tieAbove = '͡' // ͡
	tieBelow = '͜' // ͜
)

// modifier runes that attach to the preceding base character but are not
// combining marks in the Unicode sense
const attached = "ːˑʼʰʷʲˠˤ˞ⁿᵐᵑᶬʱ"

// WordBreak separates words inside one sequence.
const WordBreak = "_"

// Tokenize splits a raw phonetic string into segment tokens. Whitespace
// separates tokens unconditionally; the word break symbol and "#" become
// tokens of their own.
func Tokenize(s string) []string {
	tokens := make([]string, 0, len(s)/2+1)
	var cur strings.Builder
	tied := false

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			flush()
			tied = false
		case r == '_' || r == '#':
			flush()
			tokens = append(tokens, string(r))
			tied = false
		case r == tieAbove || r == tieBelow:
			cur.WriteRune(r)
			tied = true
		case unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) ||
			strings.ContainsRune(attached, r):
			if cur.Len() == 0 {
				// stray diacritic, keep it as its own token
				cur.WriteRune(r)
				flush()
			} else {
				cur.WriteRune(r)
			}
		default:
			if !tied {
				flush()
			}
			cur.WriteRune(r)
			tied = false
		}
	}
	flush()

	return tokens
}
