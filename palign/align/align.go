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

// Package align implements pairwise alignment of phonetic token sequences
// with four alignment modes (global, local, overlap, dialign) and two
// scoring variants: a plain one with a scalar gap penalty, and a
// sound-class-aware one driven by per-position gap weights and prosodic
// tags.
package align

import (
	"errors"
	"math"
	"strings"
)

// Mode selects the alignment recurrence.
type Mode uint8

const (
	Global Mode = iota
	Local
	Overlap
	Dialign
)

func (m Mode) String() string {
	switch m {
	case Global:
		return "global"
	case Local:
		return "local"
	case Overlap:
		return "overlap"
	case Dialign:
		return "dialign"
	}
	return "unknown"
}

// ParseMode parses a mode name as given on the command line.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "global":
		return Global, nil
	case "local":
		return Local, nil
	case "overlap":
		return Overlap, nil
	case "dialign":
		return Dialign, nil
	}
	return 0, ErrUnknownMode
}

var (
	// ErrUnknownMode indicates an alignment mode outside of
	// global/local/overlap/dialign.
	ErrUnknownMode = errors.New("align: unknown alignment mode")

	// ErrLengthMismatch indicates that a weight vector or prosodic string
	// does not have the same length as its token sequence.
	ErrLengthMismatch = errors.New("align: annotation length does not match sequence length")

	// ErrUndefinedDistance indicates that both self-similarities are zero,
	// so the normalized distance has no value.
	ErrUndefinedDistance = errors.New("align: distance undefined, both self-similarities are zero")

	// ErrUnknownSymbol indicates a token that the scorer's alphabet does
	// not contain.
	ErrUnknownSymbol = errors.New("align: symbol not in scorer alphabet")
)

// Gap is the gap symbol used in aligned output sequences.
const Gap = "-"

// Traceback codes. One byte per matrix cell.
const (
	traceNone       uint8 = iota // terminate (origin, or a null cell in local mode)
	traceDiag                    // consume one symbol of each sequence
	traceHorizontal              // consume a symbol of A, gap in B
	traceVertical                // consume a symbol of B, gap in A
)

// forbidden is the score of a gap move that the restriction rule rules out.
// A finite candidate always exists (the diagonal one), so a forbidden move
// never ends up on the optimal path.
var forbidden = math.Inf(-1)

// substantialTagDist is the tag distance from which two differing prosodic
// tags still earn half of the sonority bonus.
const substantialTagDist = 2

// Sequence is one side of a pairwise alignment: the tokens plus the
// annotations the sound-class-aware variant needs. Pros and Weights may be
// nil for the plain variant; when set, they must have one entry per token.
// The engine borrows all three slices read-only.
type Sequence struct {
	Tokens  []string
	Pros    []byte
	Weights []float64
}

// Annotated reports whether the sequence carries prosodic annotations.
func (s *Sequence) Annotated() bool {
	return s.Pros != nil && s.Weights != nil
}

func (s *Sequence) validate() error {
	if s.Pros != nil && len(s.Pros) != len(s.Tokens) {
		return ErrLengthMismatch
	}
	if s.Weights != nil && len(s.Weights) != len(s.Tokens) {
		return ErrLengthMismatch
	}
	return nil
}

// Options contains all alignment options.
type Options struct {
	Mode Mode

	// Scorer maps symbol pairs to similarity scores. When nil, an
	// identity scorer (match +1, mismatch -1) is built for the two input
	// sequences.
	Scorer *ScoreMatrix

	// GapOpen is the scalar gap penalty of the plain variant, and the
	// base penalty the prosody package turns into per-position weights.
	// It should be negative.
	GapOpen float64

	// Scale multiplies the penalty of the second and following gaps of a
	// run (gap-extension discount), in [0,1].
	Scale float64

	// Factor is the sonority bonus: a matched pair with identical
	// prosodic tags earns score*Factor on top, a pair whose tags differ
	// substantially earns half of that.
	Factor float64

	// Restricted lists the prosodic tags that may not be gapped against
	// an unrestricted counterpart away from the sequence edge.
	Restricted string

	// Basic forces the plain variant even for annotated sequences.
	Basic bool

	// ReturnDistance additionally computes the normalized distance.
	ReturnDistance bool
}

// DefaultOptions is the default set of alignment options.
var DefaultOptions = Options{
	Mode:       Global,
	GapOpen:    -1,
	Scale:      0.5,
	Factor:     0.3,
	Restricted: "T_",
}

// Aligner runs pairwise alignments. It owns reusable flat row-major score
// and traceback buffers, so it is not safe for concurrent use; batch
// callers keep one per worker.
type Aligner struct {
	scores []float64
	trace  []uint8

	// reusable per-call symbol-id buffers
	idsA, idsB []int
}

// NewAligner returns an aligner with preallocated matrix buffers.
func NewAligner() *Aligner {
	return &Aligner{
		scores: make([]float64, 1<<16),
		trace:  make([]uint8, 1<<16),
	}
}

// buffers returns score and traceback slices of n cells, growing the
// reusable buffers when needed. Both are zeroed: a previous, differently
// sized fill must never leak stale codes into a traceback walk.
func (alg *Aligner) buffers(n int) ([]float64, []uint8) {
	if n > len(alg.scores) {
		alg.scores = make([]float64, n)
		alg.trace = make([]uint8, n)
	}
	scores := alg.scores[:n]
	trace := alg.trace[:n]
	for i := range scores {
		scores[i] = 0
		trace[i] = traceNone
	}
	return scores, trace
}

// fillResult is the outcome of one matrix fill: the similarity score and
// the traceback start cell (always (N,M) except in local mode, where it is
// the running maximum).
type fillResult struct {
	score  float64
	startI int // row, index into B
	startJ int // column, index into A
}

// fill populates the score and traceback matrices for one pair and
// returns the fill result. The inputs must have been validated.
func (alg *Aligner) fill(a, b *Sequence, sm *ScoreMatrix, opt *Options) (fillResult, error) {
	ia, err := sm.intern(a.Tokens, &alg.idsA)
	if err != nil {
		return fillResult{}, err
	}
	ib, err := sm.intern(b.Tokens, &alg.idsB)
	if err != nil {
		return fillResult{}, err
	}

	if opt.Basic || !a.Annotated() || !b.Annotated() {
		switch opt.Mode {
		case Global:
			return alg.basicGlobal(ia, ib, sm, opt.GapOpen, opt.Scale), nil
		case Local:
			return alg.basicLocal(ia, ib, sm, opt.GapOpen, opt.Scale), nil
		case Overlap:
			return alg.basicOverlap(ia, ib, sm, opt.GapOpen, opt.Scale), nil
		case Dialign:
			return alg.basicDialign(ia, ib, sm), nil
		}
		return fillResult{}, ErrUnknownMode
	}

	in := prosInput{
		a: ia, b: ib,
		prosA: a.Pros, prosB: b.Pros,
		weightsA: a.Weights, weightsB: b.Weights,
		restricted: opt.Restricted,
	}
	switch opt.Mode {
	case Global:
		return alg.prosGlobal(&in, sm, opt.Scale, opt.Factor), nil
	case Local:
		return alg.prosLocal(&in, sm, opt.Scale, opt.Factor), nil
	case Overlap:
		return alg.prosOverlap(&in, sm, opt.Scale, opt.Factor), nil
	case Dialign:
		return alg.prosDialign(&in, sm, opt.Factor), nil
	}
	return fillResult{}, ErrUnknownMode
}

// bonus returns the sonority bonus for a match score s between positions
// tagged pa and pb: the full bonus on identical tags, half of it when the
// tags differ substantially.
func bonus(s float64, pa, pb byte, factor float64) float64 {
	if pa == pb {
		return s * factor
	}
	d := int(pa) - int(pb)
	if d < 0 {
		d = -d
	}
	if d >= substantialTagDist {
		return s * factor / 2
	}
	return 0
}
