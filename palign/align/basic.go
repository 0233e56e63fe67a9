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

import "math"

// Plain-character matrix fills: a scalar gap penalty with an extension
// discount, no prosodic annotation.
//
// The matrix is flat and row-major, (N+1)x(M+1) cells with N = len(b) and
// M = len(a): rows follow sequence B, columns follow sequence A. In every
// cell the candidates are evaluated in the fixed order
// vertical gap, diagonal, horizontal gap; a later candidate replaces an
// earlier one only when strictly greater. This order is part of the
// contract, it makes tie handling reproducible.

func (alg *Aligner) basicGlobal(a, b []int, sm *ScoreMatrix, gap, scale float64) fillResult {
	M, N := len(a), len(b)
	w := M + 1
	scores, trace := alg.buffers((N + 1) * w)

	// leading gaps count as extensions of one edge gap run
	for j := 1; j <= M; j++ {
		scores[j] = scores[j-1] + gap*scale
		trace[j] = traceHorizontal
	}
	for i := 1; i <= N; i++ {
		scores[i*w] = scores[(i-1)*w] + gap*scale
		trace[i*w] = traceVertical
	}

	var gapA, gapB, match, max float64
	var move uint8
	for i := 1; i <= N; i++ {
		bi := b[i-1]
		k := i * w
		for j := 1; j <= M; j++ {
			k++

			if trace[k-w] == traceVertical {
				gapA = scores[k-w] + gap*scale
			} else {
				gapA = scores[k-w] + gap
			}
			if trace[k-1] == traceHorizontal {
				gapB = scores[k-1] + gap*scale
			} else {
				gapB = scores[k-1] + gap
			}
			match = scores[k-w-1] + sm.score(a[j-1], bi)

			max = gapA
			move = traceVertical
			if match > max {
				max = match
				move = traceDiag
			}
			if gapB > max {
				max = gapB
				move = traceHorizontal
			}
			scores[k] = max
			trace[k] = move
		}
	}

	return fillResult{score: scores[N*w+M], startI: N, startJ: M}
}

func (alg *Aligner) basicLocal(a, b []int, sm *ScoreMatrix, gap, scale float64) fillResult {
	M, N := len(a), len(b)
	w := M + 1
	scores, trace := alg.buffers((N + 1) * w)

	// row 0 and column 0 stay at zero with the terminate code,
	// which buffers() already provides

	var gapA, gapB, match, max float64
	var move uint8
	var best float64
	var bestI, bestJ int
	for i := 1; i <= N; i++ {
		bi := b[i-1]
		k := i * w
		for j := 1; j <= M; j++ {
			k++

			if trace[k-w] == traceVertical {
				gapA = scores[k-w] + gap*scale
			} else {
				gapA = scores[k-w] + gap
			}
			if trace[k-1] == traceHorizontal {
				gapB = scores[k-1] + gap*scale
			} else {
				gapB = scores[k-1] + gap
			}
			match = scores[k-w-1] + sm.score(a[j-1], bi)

			max = gapA
			move = traceVertical
			if match > max {
				max = match
				move = traceDiag
			}
			if gapB > max {
				max = gapB
				move = traceHorizontal
			}
			if max < 0 {
				max = 0
				move = traceNone
			}
			scores[k] = max
			trace[k] = move

			if max > best {
				best = max
				bestI = i
				bestJ = j
			}
		}
	}

	return fillResult{score: best, startI: bestI, startJ: bestJ}
}

func (alg *Aligner) basicOverlap(a, b []int, sm *ScoreMatrix, gap, scale float64) fillResult {
	M, N := len(a), len(b)
	w := M + 1
	scores, trace := alg.buffers((N + 1) * w)

	// leading gaps are free, only the codes are needed
	for j := 1; j <= M; j++ {
		trace[j] = traceHorizontal
	}
	for i := 1; i <= N; i++ {
		trace[i*w] = traceVertical
	}

	var gapA, gapB, match, max float64
	var move uint8
	for i := 1; i <= N; i++ {
		bi := b[i-1]
		k := i * w
		for j := 1; j <= M; j++ {
			k++

			switch {
			case j == M: // trailing gaps in A are free
				gapA = scores[k-w]
			case trace[k-w] == traceVertical:
				gapA = scores[k-w] + gap*scale
			default:
				gapA = scores[k-w] + gap
			}
			switch {
			case i == N: // trailing gaps in B are free
				gapB = scores[k-1]
			case trace[k-1] == traceHorizontal:
				gapB = scores[k-1] + gap*scale
			default:
				gapB = scores[k-1] + gap
			}
			match = scores[k-w-1] + sm.score(a[j-1], bi)

			max = gapA
			move = traceVertical
			if match > max {
				max = match
				move = traceDiag
			}
			if gapB > max {
				max = gapB
				move = traceHorizontal
			}
			scores[k] = max
			trace[k] = move
		}
	}

	return fillResult{score: scores[N*w+M], startI: N, startJ: M}
}

func (alg *Aligner) basicDialign(a, b []int, sm *ScoreMatrix) fillResult {
	M, N := len(a), len(b)
	w := M + 1
	scores, trace := alg.buffers((N + 1) * w)

	for j := 1; j <= M; j++ {
		trace[j] = traceHorizontal
	}
	for i := 1; i <= N; i++ {
		trace[i*w] = traceVertical
	}

	var gapA, gapB, best, sum, max float64
	var bestLen, maxLen, l int
	var move uint8
	for i := 1; i <= N; i++ {
		k := i * w
		for j := 1; j <= M; j++ {
			k++

			// unaligned stretches carry the score over without penalty
			gapA = scores[k-w]
			gapB = scores[k-1]

			// best-scoring diagonal run ending in this cell
			best = math.Inf(-1)
			bestLen = 0
			sum = 0
			maxLen = i
			if j < i {
				maxLen = j
			}
			for l = 1; l <= maxLen; l++ {
				sum += sm.score(a[j-l], b[i-l])
				if s := scores[k-l*(w+1)] + sum; s > best {
					best = s
					bestLen = l
				}
			}

			max = gapA
			move = traceVertical
			if best > max {
				max = best
				move = traceDiag
			}
			if gapB > max {
				max = gapB
				move = traceHorizontal
			}
			scores[k] = max
			if move == traceDiag {
				// mark the whole run, replaying it in the traceback
				for l = 0; l < bestLen; l++ {
					trace[k-l*(w+1)] = traceDiag
				}
			} else {
				trace[k] = move
			}
		}
	}

	return fillResult{score: scores[N*w+M], startI: N, startJ: M}
}
