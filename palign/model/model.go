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

// Package model provides sound-class models: partitions of the phonetic
// alphabet into classes of sounds that frequently correspond in language
// change, plus the scorer built from them. Models load from TOML files,
// a compact built-in default is always available.
package model

import (
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/lingpy/palign/palign/align"
)

// Class categories.
const (
	Consonant = "consonant"
	Vowel     = "vowel"
	Tone      = "tone"
)

// Class is one sound class: a label, a category, and the sounds that
// belong to it. Sounds are matched by the first base character of a
// token, so diacritics do not need to be enumerated.
type Class struct {
	Label    string   `toml:"label"`
	Category string   `toml:"category"`
	Sounds   []string `toml:"sounds"`
}

// Model is a sound-class model plus the scores the scorer is built from.
type Model struct {
	Name    string  `toml:"name"`
	Classes []Class `toml:"classes"`

	// scores between class labels
	Match float64 `toml:"match"` // same class
	Group float64 `toml:"group"` // same category, different class
	Cross float64 `toml:"cross"` // consonant vs vowel
}

// ToneCrossScore keeps tones from ever aligning with plain segments.
const ToneCrossScore = -1e6

// Load reads a model from a TOML file, expanding a leading "~".
func Load(path string) (*Model, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.Wrap(err, "expanding model path")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading model file")
	}
	var m Model
	if err = toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "parsing model file: %s", path)
	}
	if len(m.Classes) == 0 {
		return nil, errors.Errorf("model %s defines no sound classes", path)
	}
	return &m, nil
}

// Default returns the built-in sound-class model, a compact SCA-style
// grouping of the IPA space.
func Default() *Model {
	return &Model{
		Name:  "sca",
		Match: 10,
		Group: 3,
		Cross: -10,
		Classes: []Class{
			{Label: "P", Category: Consonant, Sounds: strings.Split("p b f v ɸ β pf bv", " ")},
			{Label: "W", Category: Consonant, Sounds: strings.Split("w ʋ ɥ", " ")},
			{Label: "T", Category: Consonant, Sounds: strings.Split("t d θ ð t̪ d̪", " ")},
			{Label: "S", Category: Consonant, Sounds: strings.Split("s z ʃ ʒ ʂ ʐ ɕ ʑ t͡s d͡z t͡ʃ d͡ʒ c ɟ", " ")},
			{Label: "K", Category: Consonant, Sounds: strings.Split("k g q ɢ x ɣ χ ʁ ħ ʕ h ɦ ʔ k͡p g͡b", " ")},
			{Label: "M", Category: Consonant, Sounds: strings.Split("m ɱ", " ")},
			{Label: "N", Category: Consonant, Sounds: strings.Split("n ɳ ɲ ŋ ɴ", " ")},
			{Label: "R", Category: Consonant, Sounds: strings.Split("r ɾ ɽ ʀ ɹ ɻ", " ")},
			{Label: "L", Category: Consonant, Sounds: strings.Split("l ɭ ʎ ɫ ɬ ɮ", " ")},
			{Label: "J", Category: Consonant, Sounds: strings.Split("j", " ")},
			{Label: "A", Category: Vowel, Sounds: strings.Split("a ɑ ɐ æ", " ")},
			{Label: "E", Category: Vowel, Sounds: strings.Split("e ɛ ə ɜ œ ø", " ")},
			{Label: "I", Category: Vowel, Sounds: strings.Split("i ɪ ɨ y ʏ", " ")},
			{Label: "O", Category: Vowel, Sounds: strings.Split("o ɔ ɒ ʌ ɤ", " ")},
			{Label: "U", Category: Vowel, Sounds: strings.Split("u ʊ ɯ ʉ", " ")},
			{Label: "1", Category: Tone, Sounds: strings.Split("˥ ˦ ¹ ² 1 2", " ")},
			{Label: "2", Category: Tone, Sounds: strings.Split("˧ ³ 3 0", " ")},
			{Label: "3", Category: Tone, Sounds: strings.Split("˨ ˩ ⁴ ⁵ 4 5", " ")},
		},
	}
}

// index returns a lookup from base character to class. Tokens are matched
// on their first rune, falling back to the full token string.
func (m *Model) index() (byToken map[string]*Class, byRune map[rune]*Class) {
	byToken = make(map[string]*Class, 128)
	byRune = make(map[rune]*Class, 128)
	for i := range m.Classes {
		c := &m.Classes[i]
		for _, s := range c.Sounds {
			byToken[s] = c
			for _, r := range s {
				if _, ok := byRune[r]; !ok {
					byRune[r] = c
				}
				break
			}
		}
	}
	return byToken, byRune
}

// Classify maps a token sequence to its sound-class labels. Tokens the
// model does not cover map to the missing-data symbol.
func (m *Model) Classify(tokens []string) []string {
	byToken, byRune := m.index()
	classes := make([]string, len(tokens))
	for i, t := range tokens {
		classes[i] = m.classOf(t, byToken, byRune)
	}
	return classes
}

func (m *Model) classOf(token string, byToken map[string]*Class, byRune map[rune]*Class) string {
	if c, ok := byToken[token]; ok {
		return c.Label
	}
	for _, r := range token {
		if c, ok := byRune[r]; ok {
			return c.Label
		}
		break
	}
	return align.SymMissing
}

// ScoreMatrix builds the dense class-label scorer of the model: Match on
// the diagonal, Group inside a category, Cross between consonants and
// vowels, and tone-vs-segment pairs forced strongly negative. The
// reserved symbols keep their fixed semantics: the missing-data symbol
// scores zero against everything, the swap marker repels itself.
func (m *Model) ScoreMatrix() *align.ScoreMatrix {
	alpha := align.NewAlphabet()
	for i := range m.Classes {
		alpha.Add(m.Classes[i].Label)
	}

	sm := align.NewScoreMatrix(alpha)
	for i := range m.Classes {
		a := &m.Classes[i]
		for j := range m.Classes {
			b := &m.Classes[j]
			var s float64
			switch {
			case a.Label == b.Label:
				s = m.Match
			case (a.Category == Tone) != (b.Category == Tone):
				s = ToneCrossScore
			case a.Category == b.Category:
				s = m.Group
			default:
				s = m.Cross
			}
			// Set never fails here, both labels are interned
			_ = sm.Set(a.Label, b.Label, s)
		}
	}
	_ = sm.Set(align.SymSwap, align.SymSwap, align.SwapSelfScore)
	return sm
}
