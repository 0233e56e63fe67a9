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
	"runtime"
	"sync"
)

// Result holds the details of one pairwise alignment.
type Result struct {
	AlignedA []string // gapped output for sequence A
	AlignedB []string // gapped output for sequence B
	Score    float64

	Distance    float64
	HasDistance bool

	// local mode: the unaligned flanks of each input, so that the full
	// sequence is recoverable as Prefix + Aligned (gaps stripped) + Suffix
	PrefixA, SuffixA []string
	PrefixB, SuffixB []string

	// local mode: aligned sub-ranges as half-open token offsets
	StartA, EndA int
	StartB, EndB int
}

// Reset resets all the values.
func (r *Result) Reset() {
	r.AlignedA = r.AlignedA[:0]
	r.AlignedB = r.AlignedB[:0]
	r.Score = 0
	r.Distance = 0
	r.HasDistance = false
	r.PrefixA = r.PrefixA[:0]
	r.SuffixA = r.SuffixA[:0]
	r.PrefixB = r.PrefixB[:0]
	r.SuffixB = r.SuffixB[:0]
	r.StartA, r.EndA = 0, 0
	r.StartB, r.EndB = 0, 0
}

var poolResult = &sync.Pool{New: func() interface{} {
	r := &Result{}
	r.AlignedA = make([]string, 0, 64)
	r.AlignedB = make([]string, 0, 64)
	return r
}}

// RecycleResult recycles an alignment result.
func RecycleResult(r *Result) {
	poolResult.Put(r)
}

// AlignPair aligns two sequences with a fresh aligner. For batches,
// create one Aligner per worker and call its AlignPair instead.
// Please remember to recycle the result after using by calling
// RecycleResult.
func AlignPair(a, b Sequence, opt *Options) (*Result, error) {
	return NewAligner().AlignPair(a, b, opt)
}

// AlignPair aligns a pair of sequences. Configuration errors (unknown
// mode, annotation length mismatches, tokens outside the scorer's
// alphabet) are reported before any matrix work; empty sequences are
// valid and produce an all-gap or empty alignment.
func (alg *Aligner) AlignPair(a, b Sequence, opt *Options) (*Result, error) {
	if opt == nil {
		o := DefaultOptions
		opt = &o
	}
	if opt.Mode > Dialign {
		return nil, ErrUnknownMode
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	if err := b.validate(); err != nil {
		return nil, err
	}

	sm := opt.Scorer
	if sm == nil {
		sm = NewIdentityScoreMatrix(1, -1, a.Tokens, b.Tokens)
	}

	fr, err := alg.fill(&a, &b, sm, opt)
	if err != nil {
		return nil, err
	}

	M, N := len(a.Tokens), len(b.Tokens)
	w := M + 1
	trace := alg.trace[:(N+1)*w]

	r := poolResult.Get().(*Result)
	r.Reset()
	r.Score = fr.score

	var i0, j0 int
	r.AlignedA, r.AlignedB, i0, j0 = walk(trace, w, a.Tokens, b.Tokens, fr.startI, fr.startJ, r.AlignedA, r.AlignedB)

	if opt.Mode == Local {
		r.StartA, r.EndA = j0, fr.startJ
		r.StartB, r.EndB = i0, fr.startI
		r.PrefixA = append(r.PrefixA, a.Tokens[:j0]...)
		r.SuffixA = append(r.SuffixA, a.Tokens[fr.startJ:]...)
		r.PrefixB = append(r.PrefixB, b.Tokens[:i0]...)
		r.SuffixB = append(r.SuffixB, b.Tokens[fr.startI:]...)
	} else {
		r.EndA = M
		r.EndB = N
	}

	if opt.ReturnDistance {
		factor := opt.Factor
		if opt.Basic || !a.Annotated() || !b.Annotated() {
			factor = 0
		}
		d, err := Distance(fr.score, a.Tokens, b.Tokens, sm, factor)
		if err != nil {
			RecycleResult(r)
			return nil, err
		}
		r.Distance = d
		r.HasDistance = true
	}

	return r, nil
}

// Pair is one input of a paired-list batch.
type Pair struct {
	A, B Sequence
}

// PairResult is one output of an all-pairs batch.
type PairResult struct {
	I, J int // indices into the input list
	*Result
}

// AlignPairedList aligns every pair of a list in parallel with the given
// number of worker goroutines (<= 0 for all CPUs). The pairs are
// independent, every worker owns its aligner, and results keep the input
// order. The first error aborts the batch.
func AlignPairedList(pairs []Pair, opt *Options, threads int) ([]*Result, error) {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	results := make([]*Result, len(pairs))

	var wg sync.WaitGroup
	ch := make(chan int, threads)

	var once sync.Once
	var firstErr error

	for t := 0; t < threads; t++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			alg := NewAligner()
			for idx := range ch {
				r, err := alg.AlignPair(pairs[idx].A, pairs[idx].B, opt)
				if err != nil {
					once.Do(func() { firstErr = err })
					continue
				}
				results[idx] = r
			}
		}()
	}
	for i := range pairs {
		ch <- i
	}
	close(ch)
	wg.Wait()

	if firstErr != nil {
		for _, r := range results {
			if r != nil {
				RecycleResult(r)
			}
		}
		return nil, firstErr
	}
	return results, nil
}

// AlignAllPairs aligns all unordered pairs (i < j) of a sequence list in
// parallel. See AlignPairedList for the concurrency contract.
func AlignAllPairs(seqs []Sequence, opt *Options, threads int) ([]PairResult, error) {
	n := len(seqs)
	pairs := make([]Pair, 0, n*(n-1)/2)
	idxs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{A: seqs[i], B: seqs[j]})
			idxs = append(idxs, [2]int{i, j})
		}
	}

	rs, err := AlignPairedList(pairs, opt, threads)
	if err != nil {
		return nil, err
	}

	out := make([]PairResult, len(rs))
	for k, r := range rs {
		out[k] = PairResult{I: idxs[k][0], J: idxs[k][1], Result: r}
	}
	return out, nil
}
