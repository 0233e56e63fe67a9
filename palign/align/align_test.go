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
	"math"
	"strings"
	"testing"
)

func tokens(s string) []string {
	return strings.Split(s, "")
}

// stripGaps removes the gap symbols from an aligned row.
func stripGaps(row []string) []string {
	out := make([]string, 0, len(row))
	for _, s := range row {
		if s != Gap {
			out = append(out, s)
		}
	}
	return out
}

func equalTokens(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// checkLengthInvariant asserts the output rows have equal length and
// that stripping gaps recovers the aligned range of each input.
func checkLengthInvariant(t *testing.T, r *Result, a, b []string) {
	t.Helper()
	if len(r.AlignedA) != len(r.AlignedB) {
		t.Fatalf("aligned rows differ in length: %d vs %d", len(r.AlignedA), len(r.AlignedB))
	}
	if got := stripGaps(r.AlignedA); !equalTokens(got, a[r.StartA:r.EndA]) {
		t.Fatalf("row A does not restore input: %v vs %v", got, a[r.StartA:r.EndA])
	}
	if got := stripGaps(r.AlignedB); !equalTokens(got, b[r.StartB:r.EndB]) {
		t.Fatalf("row B does not restore input: %v vs %v", got, b[r.StartB:r.EndB])
	}
}

func TestGlobalSelfAlignment(t *testing.T) {
	seq := Sequence{Tokens: tokens("walden")}
	opt := &Options{Mode: Global, GapOpen: -1, Scale: 0.5, Basic: true}

	r, err := AlignPair(seq, seq, opt)
	if err != nil {
		t.Fatal(err)
	}
	defer RecycleResult(r)

	for i := range r.AlignedA {
		if r.AlignedA[i] == Gap || r.AlignedB[i] == Gap {
			t.Fatalf("self-alignment contains a gap at %d", i)
		}
	}
	if r.Score != float64(len(seq.Tokens)) {
		t.Fatalf("self-similarity: got %f, want %d", r.Score, len(seq.Tokens))
	}
	checkLengthInvariant(t, r, seq.Tokens, seq.Tokens)
}

func TestGlobalScoreSymmetry(t *testing.T) {
	// the classic pair: similarity must not depend on the call order
	a := Sequence{Tokens: []string{"w", "a", "l", "d", "e", "m", "a", "r"}}
	b := Sequence{Tokens: []string{"v", "l", "a", "d", "i", "m", "i", "r"}}
	opt := &Options{Mode: Global, GapOpen: -1, Scale: 1, Basic: true}

	r1, err := AlignPair(a, b, opt)
	if err != nil {
		t.Fatal(err)
	}
	defer RecycleResult(r1)
	r2, err := AlignPair(b, a, opt)
	if err != nil {
		t.Fatal(err)
	}
	defer RecycleResult(r2)

	if r1.Score != r2.Score {
		t.Fatalf("similarity depends on call order: %f vs %f", r1.Score, r2.Score)
	}
	checkLengthInvariant(t, r1, a.Tokens, b.Tokens)
	checkLengthInvariant(t, r2, b.Tokens, a.Tokens)
}

func TestModeMonotonicity(t *testing.T) {
	a := Sequence{Tokens: tokens("sonne")}
	b := Sequence{Tokens: tokens("sunu")}

	global := func(gap float64) float64 {
		r, err := AlignPair(a, b, &Options{Mode: Global, GapOpen: gap, Scale: 1, Basic: true})
		if err != nil {
			t.Fatal(err)
		}
		defer RecycleResult(r)
		return r.Score
	}

	rLocal, err := AlignPair(a, b, &Options{Mode: Local, GapOpen: -1, Scale: 1, Basic: true})
	if err != nil {
		t.Fatal(err)
	}
	defer RecycleResult(rLocal)

	g1 := global(-1)
	g2 := global(-3)
	if rLocal.Score < g1 {
		t.Fatalf("local similarity %f < global %f", rLocal.Score, g1)
	}
	if g1 < g2 {
		t.Fatalf("global similarity %f with mild gaps < %f with strict gaps", g1, g2)
	}
}

func TestLocalSubrange(t *testing.T) {
	a := Sequence{Tokens: tokens("xxdemazz")}
	b := Sequence{Tokens: tokens("qdemaq")}
	opt := &Options{Mode: Local, GapOpen: -2, Scale: 1, Basic: true}

	r, err := AlignPair(a, b, opt)
	if err != nil {
		t.Fatal(err)
	}
	defer RecycleResult(r)

	checkLengthInvariant(t, r, a.Tokens, b.Tokens)

	// the full inputs are recoverable from prefix + aligned + suffix
	full := append(append(append([]string{}, r.PrefixA...), stripGaps(r.AlignedA)...), r.SuffixA...)
	if !equalTokens(full, a.Tokens) {
		t.Fatalf("prefix/aligned/suffix do not restore A: %v", full)
	}
	full = append(append(append([]string{}, r.PrefixB...), stripGaps(r.AlignedB)...), r.SuffixB...)
	if !equalTokens(full, b.Tokens) {
		t.Fatalf("prefix/aligned/suffix do not restore B: %v", full)
	}

	if !equalTokens(stripGaps(r.AlignedA), tokens("dema")) {
		t.Fatalf("unexpected local core: %v", r.AlignedA)
	}
	if r.Score != 4 {
		t.Fatalf("local similarity: got %f, want 4", r.Score)
	}
}

func TestOverlapInfixFreedom(t *testing.T) {
	long := Sequence{Tokens: tokens("waldemar")}
	short := Sequence{Tokens: tokens("dem")}
	opt := &Options{Mode: Overlap, GapOpen: -1, Scale: 1, Basic: true}

	r, err := AlignPair(long, short, opt)
	if err != nil {
		t.Fatal(err)
	}
	defer RecycleResult(r)

	// an exact infix aligns with no penalty for the unmatched ends
	if r.Score != float64(len(short.Tokens)) {
		t.Fatalf("overlap similarity: got %f, want %d", r.Score, len(short.Tokens))
	}
	checkLengthInvariant(t, r, long.Tokens, short.Tokens)
}

func TestDialignBlock(t *testing.T) {
	a := Sequence{Tokens: tokens("xyabc")}
	b := Sequence{Tokens: tokens("abcz")}
	opt := &Options{Mode: Dialign, Basic: true}

	r, err := AlignPair(a, b, opt)
	if err != nil {
		t.Fatal(err)
	}
	defer RecycleResult(r)

	// the shared block aligns, the rest carries over without penalty
	if r.Score != 3 {
		t.Fatalf("dialign similarity: got %f, want 3", r.Score)
	}
	checkLengthInvariant(t, r, a.Tokens, b.Tokens)
}

func TestRestrictionEnforcement(t *testing.T) {
	alpha := NewAlphabet([]string{"p", "a", "1"})
	sm := NewScoreMatrix(alpha)
	checkSet := func(x, y string, s float64) {
		if err := sm.Set(x, y, s); err != nil {
			t.Fatal(err)
		}
	}
	checkSet("p", "p", 2)
	checkSet("a", "a", 2)
	checkSet("1", "1", 2)
	checkSet("1", "p", -1)
	checkSet("1", "a", -1)
	checkSet("p", "a", -2)

	// cheap gaps would prefer to gap the tone against nothing, the
	// restriction forces it into a (badly scoring) diagonal instead
	a := Sequence{
		Tokens:  []string{"p", "a"},
		Pros:    []byte{'#', 'V'},
		Weights: []float64{-0.5, -0.5},
	}
	b := Sequence{
		Tokens:  []string{"p", "1", "a"},
		Pros:    []byte{'#', 'T', 'V'},
		Weights: []float64{-0.5, -0.5, -0.5},
	}
	opt := &Options{Mode: Global, Scorer: sm, Scale: 1, Factor: 0, Restricted: "T_"}

	r, err := AlignPair(a, b, opt)
	if err != nil {
		t.Fatal(err)
	}
	defer RecycleResult(r)

	for i := range r.AlignedB {
		if r.AlignedB[i] == "1" && r.AlignedA[i] == Gap {
			t.Fatalf("restricted tone position gapped against unrestricted counterpart: %v / %v",
				r.AlignedA, r.AlignedB)
		}
	}
	checkLengthInvariant(t, r, a.Tokens, b.Tokens)
}

func TestProsodicSelfAlignment(t *testing.T) {
	sm := NewIdentityScoreMatrix(1, -1, tokens("pata"))
	s := Sequence{
		Tokens:  tokens("pata"),
		Pros:    []byte{'#', 'V', 'c', 'v'},
		Weights: []float64{-2, -1.5, -1.1, -1.3},
	}
	opt := &Options{Mode: Global, Scorer: sm, Scale: 0.5, Factor: 0.3, Restricted: "T_", ReturnDistance: true}

	r, err := AlignPair(s, s, opt)
	if err != nil {
		t.Fatal(err)
	}
	defer RecycleResult(r)

	want, err := SelfSimilarity(s.Tokens, sm, 0.3)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r.Score-want) > 1e-9 {
		t.Fatalf("prosodic self-similarity: got %f, want %f", r.Score, want)
	}
	if !r.HasDistance || math.Abs(r.Distance) > 1e-9 {
		t.Fatalf("self-distance: got %f, want 0", r.Distance)
	}
}

func TestEmptySequences(t *testing.T) {
	empty := Sequence{}
	full := Sequence{Tokens: tokens("abc")}
	opt := &Options{Mode: Global, GapOpen: -1, Scale: 1, Basic: true}

	r, err := AlignPair(empty, full, opt)
	if err != nil {
		t.Fatal(err)
	}
	defer RecycleResult(r)
	if len(r.AlignedA) != 3 || !equalTokens(stripGaps(r.AlignedA), nil) {
		t.Fatalf("empty vs full should be all gaps in A: %v", r.AlignedA)
	}

	r2, err := AlignPair(empty, empty, opt)
	if err != nil {
		t.Fatal(err)
	}
	defer RecycleResult(r2)
	if len(r2.AlignedA) != 0 || len(r2.AlignedB) != 0 || r2.Score != 0 {
		t.Fatalf("empty vs empty should be empty: %v / %v", r2.AlignedA, r2.AlignedB)
	}
}

func TestConfigurationErrors(t *testing.T) {
	a := Sequence{Tokens: tokens("ab")}

	_, err := AlignPair(a, a, &Options{Mode: Mode(42), Basic: true})
	if !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}

	if _, err = ParseMode("semiglobal"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}

	bad := Sequence{Tokens: tokens("ab"), Pros: []byte{'V'}, Weights: []float64{-1}}
	_, err = AlignPair(bad, a, &Options{Mode: Global})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}

	sm := NewIdentityScoreMatrix(1, -1, tokens("ab"))
	_, err = AlignPair(Sequence{Tokens: tokens("xy")}, a, &Options{Mode: Global, Scorer: sm, Basic: true})
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	for name, want := range map[string]Mode{
		"global":  Global,
		"Local":   Local,
		"OVERLAP": Overlap,
		"dialign": Dialign,
	} {
		got, err := ParseMode(name)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("ParseMode(%s): got %v, want %v", name, got, want)
		}
	}
}
