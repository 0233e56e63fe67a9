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

// walk reconstructs one optimal alignment from a filled traceback matrix
// of width w, starting at cell (startI, startJ) and moving toward the
// origin. The gapped output is appended to dstA/dstB. It returns the two
// outputs plus the cell where the walk stopped, which for local mode
// marks the begin of the aligned sub-range.
func walk(trace []uint8, w int, aTok, bTok []string, startI, startJ int, dstA, dstB []string) (alignedA, alignedB []string, endI, endJ int) {
	i, j := startI, startJ
	alignedA = dstA
	alignedB = dstB

	for i > 0 || j > 0 {
		code := trace[i*w+j]
		if code == traceNone {
			// local mode terminates inside the matrix, the other modes
			// only carry this code at the origin
			break
		}
		switch code {
		case traceDiag:
			alignedA = append(alignedA, aTok[j-1])
			alignedB = append(alignedB, bTok[i-1])
			i--
			j--
		case traceVertical:
			alignedA = append(alignedA, Gap)
			alignedB = append(alignedB, bTok[i-1])
			i--
		case traceHorizontal:
			alignedA = append(alignedA, aTok[j-1])
			alignedB = append(alignedB, Gap)
			j--
		}
	}

	reverseStrings(alignedA)
	reverseStrings(alignedB)
	return alignedA, alignedB, i, j
}

func reverseStrings(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
