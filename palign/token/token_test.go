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

package token

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"haus", []string{"h", "a", "u", "s"}},

		// length mark and aspiration attach to the base character
		{"tʰiː", []string{"tʰ", "iː"}},
		{"kʷaː", []string{"kʷ", "aː"}},

		// tie bar glues an affricate into one token
		{"t͡sʊŋə", []string{"t͡s", "ʊ", "ŋ", "ə"}},
		{"t͜ʃa", []string{"t͜ʃ", "a"}},

		// combining marks stay with their base
		{"ã", []string{"ã"}},

		// whitespace splits unconditionally, even pre-segmented input
		{"v l a d i m i r", []string{"v", "l", "a", "d", "i", "m", "i", "r"}},
		{"t͡s ʊ ŋ ə", []string{"t͡s", "ʊ", "ŋ", "ə"}},

		// word break and boundary marker are tokens of their own
		{"han_til", []string{"h", "a", "n", "_", "t", "i", "l"}},
		{"#aus#", []string{"#", "a", "u", "s", "#"}},

		// a stray diacritic survives as its own token
		{"ʰa", []string{"ʰ", "a"}},
	}

	for _, c := range cases {
		got := Tokenize(c.in)
		if len(got) == 0 && len(c.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Tokenize(%q): got %v, want %v", c.in, got, c.want)
		}
	}
}
