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

// Reserved segment symbols that every scorer alphabet should carry.
const (
	// SymMissing marks missing or unknown data. It scores neutrally
	// against everything.
	SymMissing = "X"

	// SymSwap marks a metathesis (swap) site. Its self-score is strongly
	// negative so that two swap markers never align.
	SymSwap = "+"
)

// Alphabet interns segment symbols to small integer ids, so that scorers
// can be backed by a dense matrix instead of a hash map.
type Alphabet struct {
	ids  map[string]int
	syms []string
}

// NewAlphabet returns an alphabet holding every symbol of the given
// sequences plus the reserved symbols.
func NewAlphabet(seqs ...[]string) *Alphabet {
	a := &Alphabet{ids: make(map[string]int, 64)}
	a.Add(SymMissing)
	a.Add(SymSwap)
	for _, seq := range seqs {
		for _, sym := range seq {
			a.Add(sym)
		}
	}
	return a
}

// Add interns a symbol and returns its id.
func (a *Alphabet) Add(sym string) int {
	if id, ok := a.ids[sym]; ok {
		return id
	}
	id := len(a.syms)
	a.ids[sym] = id
	a.syms = append(a.syms, sym)
	return id
}

// ID returns the id of an interned symbol.
func (a *Alphabet) ID(sym string) (int, bool) {
	id, ok := a.ids[sym]
	return id, ok
}

// Symbol returns the symbol of an id.
func (a *Alphabet) Symbol(id int) string {
	return a.syms[id]
}

// Len returns the number of interned symbols.
func (a *Alphabet) Len() int {
	return len(a.syms)
}

// ScoreMatrix is a symmetric pairwise scorer backed by a dense row-major
// table over interned symbol ids.
type ScoreMatrix struct {
	alpha  *Alphabet
	n      int
	scores []float64
}

// NewScoreMatrix returns a zero-filled scorer over the alphabet.
func NewScoreMatrix(alpha *Alphabet) *ScoreMatrix {
	n := alpha.Len()
	return &ScoreMatrix{
		alpha:  alpha,
		n:      n,
		scores: make([]float64, n*n),
	}
}

// NewIdentityScoreMatrix returns a scorer over the symbols of the given
// sequences with score match for identical symbols and mismatch for
// differing ones. The swap marker keeps a strongly negative self-score
// and the missing-data marker scores zero against everything.
func NewIdentityScoreMatrix(match, mismatch float64, seqs ...[]string) *ScoreMatrix {
	alpha := NewAlphabet(seqs...)
	sm := NewScoreMatrix(alpha)
	n := alpha.Len()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				sm.scores[i*n+j] = match
			} else {
				sm.scores[i*n+j] = mismatch
			}
		}
	}
	x, _ := alpha.ID(SymMissing)
	for i := 0; i < n; i++ {
		sm.scores[x*n+i] = 0
		sm.scores[i*n+x] = 0
	}
	s, _ := alpha.ID(SymSwap)
	sm.scores[s*n+s] = SwapSelfScore
	return sm
}

// SwapSelfScore is the self-score of the metathesis marker.
const SwapSelfScore = -1e6

// Alphabet returns the scorer's alphabet.
func (sm *ScoreMatrix) Alphabet() *Alphabet {
	return sm.alpha
}

// Set assigns the score of a symbol pair in both directions.
func (sm *ScoreMatrix) Set(a, b string, score float64) error {
	i, ok := sm.alpha.ID(a)
	if !ok {
		return ErrUnknownSymbol
	}
	j, ok := sm.alpha.ID(b)
	if !ok {
		return ErrUnknownSymbol
	}
	sm.scores[i*sm.n+j] = score
	sm.scores[j*sm.n+i] = score
	return nil
}

// Score returns the score of two symbols.
func (sm *ScoreMatrix) Score(a, b string) (float64, error) {
	i, ok := sm.alpha.ID(a)
	if !ok {
		return 0, ErrUnknownSymbol
	}
	j, ok := sm.alpha.ID(b)
	if !ok {
		return 0, ErrUnknownSymbol
	}
	return sm.scores[i*sm.n+j], nil
}

// score returns the score of two interned ids. Hot path, no checks.
func (sm *ScoreMatrix) score(i, j int) float64 {
	return sm.scores[i*sm.n+j]
}

// intern maps tokens to ids, reusing the given buffer.
func (sm *ScoreMatrix) intern(tokens []string, buf *[]int) ([]int, error) {
	ids := (*buf)[:0]
	for _, t := range tokens {
		id, ok := sm.alpha.ID(t)
		if !ok {
			return nil, ErrUnknownSymbol
		}
		ids = append(ids, id)
	}
	*buf = ids
	return ids, nil
}
