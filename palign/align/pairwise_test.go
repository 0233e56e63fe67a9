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

package align

import (
	"errors"
	"fmt"
	"testing"
)

func TestAlignPairedList(t *testing.T) {
	words := []string{"walde", "vlad", "hant", "hand", "sonne", "sunu"}
	var pairs []Pair
	for i := 0; i+1 < len(words); i += 2 {
		pairs = append(pairs, Pair{
			A: Sequence{Tokens: tokens(words[i])},
			B: Sequence{Tokens: tokens(words[i+1])},
		})
	}
	opt := &Options{Mode: Global, GapOpen: -1, Scale: 0.5, Basic: true, ReturnDistance: true}

	// results must match the serial ones regardless of the worker count
	serial, err := AlignPairedList(pairs, opt, 1)
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := AlignPairedList(pairs, opt, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(serial) != len(pairs) || len(parallel) != len(pairs) {
		t.Fatalf("result count: %d / %d, want %d", len(serial), len(parallel), len(pairs))
	}

	for k := range pairs {
		if serial[k].Score != parallel[k].Score {
			t.Fatalf("pair %d: serial score %f != parallel score %f",
				k, serial[k].Score, parallel[k].Score)
		}
		if serial[k].Distance != parallel[k].Distance {
			t.Fatalf("pair %d: serial distance %f != parallel distance %f",
				k, serial[k].Distance, parallel[k].Distance)
		}
		if !equalTokens(serial[k].AlignedA, parallel[k].AlignedA) {
			t.Fatalf("pair %d: alignments differ", k)
		}
		RecycleResult(serial[k])
		RecycleResult(parallel[k])
	}
}

func TestAlignPairedListError(t *testing.T) {
	pairs := []Pair{
		{A: Sequence{Tokens: tokens("ab")}, B: Sequence{Tokens: tokens("ab")}},
		{A: Sequence{Tokens: tokens("ab"), Pros: []byte{'V'}}, B: Sequence{Tokens: tokens("ab")}},
	}
	opt := &Options{Mode: Global, GapOpen: -1, Scale: 0.5, Basic: true}

	_, err := AlignPairedList(pairs, opt, 2)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestAlignAllPairs(t *testing.T) {
	words := []string{"hant", "hand", "hunt", "ant"}
	seqs := make([]Sequence, len(words))
	for i, wrd := range words {
		seqs[i] = Sequence{Tokens: tokens(wrd)}
	}
	opt := &Options{Mode: Global, GapOpen: -1, Scale: 0.5, Basic: true, ReturnDistance: true}

	rs, err := AlignAllPairs(seqs, opt, 2)
	if err != nil {
		t.Fatal(err)
	}

	n := len(words)
	if len(rs) != n*(n-1)/2 {
		t.Fatalf("pair count: got %d, want %d", len(rs), n*(n-1)/2)
	}

	seen := make(map[string]bool, len(rs))
	for _, pr := range rs {
		if pr.I >= pr.J || pr.I < 0 || pr.J >= n {
			t.Fatalf("bad pair indices: (%d,%d)", pr.I, pr.J)
		}
		key := fmt.Sprintf("%d-%d", pr.I, pr.J)
		if seen[key] {
			t.Fatalf("duplicate pair (%d,%d)", pr.I, pr.J)
		}
		seen[key] = true
		if !pr.HasDistance {
			t.Fatalf("pair (%d,%d) without distance", pr.I, pr.J)
		}
		RecycleResult(pr.Result)
	}
}
