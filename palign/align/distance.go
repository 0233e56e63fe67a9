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

// Distance converts a raw similarity score into Downey's normalized
// distance, 1 - 2*sim/(selfA+selfB), where selfX is the self-similarity
// of sequence X under the same scorer and sonority bonus. The result is
// zero for a sequence aligned with itself, but a non-metric scorer gives
// no guarantee of non-negativity or an upper bound of one.
func Distance(sim float64, a, b []string, sm *ScoreMatrix, factor float64) (float64, error) {
	selfA, err := SelfSimilarity(a, sm, factor)
	if err != nil {
		return 0, err
	}
	selfB, err := SelfSimilarity(b, sm, factor)
	if err != nil {
		return 0, err
	}
	sum := selfA + selfB
	if sum == 0 {
		return 0, ErrUndefinedDistance
	}
	return 1 - 2*sim/sum, nil
}

// SelfSimilarity is the similarity of a sequence aligned with itself:
// the sum of the diagonal scores of its tokens, each carrying the full
// sonority bonus.
func SelfSimilarity(tokens []string, sm *ScoreMatrix, factor float64) (float64, error) {
	var sum float64
	for _, t := range tokens {
		s, err := sm.Score(t, t)
		if err != nil {
			return 0, err
		}
		sum += s * (1 + factor)
	}
	return sum, nil
}
