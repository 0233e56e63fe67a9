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
	"testing"
)

func TestDistanceIdentity(t *testing.T) {
	a := tokens("haus")
	sm := NewIdentityScoreMatrix(1, -1, a)

	self, err := SelfSimilarity(a, sm, 0)
	if err != nil {
		t.Fatal(err)
	}
	d, err := Distance(self, a, a, sm, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(d) > 1e-9 {
		t.Fatalf("identity distance: got %f, want 0", d)
	}
}

func TestDistanceSymmetry(t *testing.T) {
	a := Sequence{Tokens: tokens("hant")}
	b := Sequence{Tokens: tokens("hand")}
	opt := &Options{Mode: Global, GapOpen: -1, Scale: 1, Basic: true, ReturnDistance: true}

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

	if !r1.HasDistance || !r2.HasDistance {
		t.Fatal("distance missing")
	}
	if math.Abs(r1.Distance-r2.Distance) > 1e-9 {
		t.Fatalf("distance depends on call order: %f vs %f", r1.Distance, r2.Distance)
	}
	if r1.Distance < 0 || r1.Distance > 1 {
		// positive self-similarities keep the value in [0,1]
		t.Fatalf("distance out of range: %f", r1.Distance)
	}
}

func TestDistanceUndefined(t *testing.T) {
	a := tokens("ab")
	sm := NewIdentityScoreMatrix(0, -1, a)

	_, err := Distance(0, a, a, sm, 0)
	if !errors.Is(err, ErrUndefinedDistance) {
		t.Fatalf("expected ErrUndefinedDistance, got %v", err)
	}
}

func TestDistanceFactor(t *testing.T) {
	a := tokens("pa")
	sm := NewIdentityScoreMatrix(2, -1, a)

	plain, err := SelfSimilarity(a, sm, 0)
	if err != nil {
		t.Fatal(err)
	}
	boosted, err := SelfSimilarity(a, sm, 0.3)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(boosted-plain*1.3) > 1e-9 {
		t.Fatalf("self-similarity with bonus: got %f, want %f", boosted, plain*1.3)
	}
}
