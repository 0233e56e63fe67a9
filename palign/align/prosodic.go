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
	"math"
	"strings"
)

// Sound-class-aware matrix fills: per-position gap weights, sonority
// bonuses on matched prosodic tags, and gap restriction. A restricted
// position (word break, tone) may not be gapped against an unrestricted
// counterpart away from the sequence edge; such a move gets the forbidden
// sentinel instead of a scaled penalty, so it can never win against the
// always-finite diagonal candidate.

type prosInput struct {
	a, b               []int
	prosA, prosB       []byte
	weightsA, weightsB []float64
	restricted         string
}

func (in *prosInput) restrictedTag(t byte) bool {
	return strings.IndexByte(in.restricted, t) >= 0
}

func (alg *Aligner) prosGlobal(in *prosInput, sm *ScoreMatrix, scale, factor float64) fillResult {
	M, N := len(in.a), len(in.b)
	w := M + 1
	scores, trace := alg.buffers((N + 1) * w)

	for j := 1; j <= M; j++ {
		scores[j] = scores[j-1] + in.weightsA[j-1]*scale
		trace[j] = traceHorizontal
	}
	for i := 1; i <= N; i++ {
		scores[i*w] = scores[(i-1)*w] + in.weightsB[i-1]*scale
		trace[i*w] = traceVertical
	}

	var gapA, gapB, match, max, s float64
	var move uint8
	for i := 1; i <= N; i++ {
		bi := in.b[i-1]
		pb := in.prosB[i-1]
		wb := in.weightsB[i-1]
		rb := in.restrictedTag(pb)
		k := i * w
		for j := 1; j <= M; j++ {
			k++
			pa := in.prosA[j-1]
			ra := in.restrictedTag(pa)

			// gap in A, consuming B[i-1]
			switch {
			case rb && !ra && i < N:
				gapA = forbidden
			case trace[k-w] == traceVertical:
				gapA = scores[k-w] + wb*scale
			default:
				gapA = scores[k-w] + wb
			}

			// gap in B, consuming A[j-1]
			switch {
			case ra && !rb && j < M:
				gapB = forbidden
			case trace[k-1] == traceHorizontal:
				gapB = scores[k-1] + in.weightsA[j-1]*scale
			default:
				gapB = scores[k-1] + in.weightsA[j-1]
			}

			s = sm.score(in.a[j-1], bi)
			match = scores[k-w-1] + s + bonus(s, pa, pb, factor)

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

func (alg *Aligner) prosLocal(in *prosInput, sm *ScoreMatrix, scale, factor float64) fillResult {
	M, N := len(in.a), len(in.b)
	w := M + 1
	scores, trace := alg.buffers((N + 1) * w)

	var gapA, gapB, match, max, s float64
	var move uint8
	var best float64
	var bestI, bestJ int
	for i := 1; i <= N; i++ {
		bi := in.b[i-1]
		pb := in.prosB[i-1]
		wb := in.weightsB[i-1]
		rb := in.restrictedTag(pb)
		k := i * w
		for j := 1; j <= M; j++ {
			k++
			pa := in.prosA[j-1]
			ra := in.restrictedTag(pa)

			switch {
			case rb && !ra && i < N:
				gapA = forbidden
			case trace[k-w] == traceVertical:
				gapA = scores[k-w] + wb*scale
			default:
				gapA = scores[k-w] + wb
			}

			switch {
			case ra && !rb && j < M:
				gapB = forbidden
			case trace[k-1] == traceHorizontal:
				gapB = scores[k-1] + in.weightsA[j-1]*scale
			default:
				gapB = scores[k-1] + in.weightsA[j-1]
			}

			s = sm.score(in.a[j-1], bi)
			match = scores[k-w-1] + s + bonus(s, pa, pb, factor)

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

func (alg *Aligner) prosOverlap(in *prosInput, sm *ScoreMatrix, scale, factor float64) fillResult {
	M, N := len(in.a), len(in.b)
	w := M + 1
	scores, trace := alg.buffers((N + 1) * w)

	for j := 1; j <= M; j++ {
		trace[j] = traceHorizontal
	}
	for i := 1; i <= N; i++ {
		trace[i*w] = traceVertical
	}

	var gapA, gapB, match, max, s float64
	var move uint8
	for i := 1; i <= N; i++ {
		bi := in.b[i-1]
		pb := in.prosB[i-1]
		wb := in.weightsB[i-1]
		rb := in.restrictedTag(pb)
		k := i * w
		for j := 1; j <= M; j++ {
			k++
			pa := in.prosA[j-1]
			ra := in.restrictedTag(pa)

			// trailing gaps on the last row/column stay free,
			// the restriction only applies away from the edge
			switch {
			case j == M:
				gapA = scores[k-w]
			case rb && !ra && i < N:
				gapA = forbidden
			case trace[k-w] == traceVertical:
				gapA = scores[k-w] + wb*scale
			default:
				gapA = scores[k-w] + wb
			}

			switch {
			case i == N:
				gapB = scores[k-1]
			case ra && !rb && j < M:
				gapB = forbidden
			case trace[k-1] == traceHorizontal:
				gapB = scores[k-1] + in.weightsA[j-1]*scale
			default:
				gapB = scores[k-1] + in.weightsA[j-1]
			}

			s = sm.score(in.a[j-1], bi)
			match = scores[k-w-1] + s + bonus(s, pa, pb, factor)

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

func (alg *Aligner) prosDialign(in *prosInput, sm *ScoreMatrix, factor float64) fillResult {
	M, N := len(in.a), len(in.b)
	w := M + 1
	scores, trace := alg.buffers((N + 1) * w)

	for j := 1; j <= M; j++ {
		trace[j] = traceHorizontal
	}
	for i := 1; i <= N; i++ {
		trace[i*w] = traceVertical
	}

	var gapA, gapB, best, sum, max, s float64
	var bestLen, maxLen, l int
	var move uint8
	for i := 1; i <= N; i++ {
		k := i * w
		for j := 1; j <= M; j++ {
			k++

			gapA = scores[k-w]
			gapB = scores[k-1]

			best = math.Inf(-1)
			bestLen = 0
			sum = 0
			maxLen = i
			if j < i {
				maxLen = j
			}
			for l = 1; l <= maxLen; l++ {
				s = sm.score(in.a[j-l], in.b[i-l])
				sum += s + bonus(s, in.prosA[j-l], in.prosB[i-l], factor)
				if v := scores[k-l*(w+1)] + sum; v > best {
					best = v
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
