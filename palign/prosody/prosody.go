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

// Package prosody derives prosodic position strings and per-position
// gap-opening weights from token sequences. Alignment favors gaps in
// structurally weak positions (codas, final consonants) over strong ones
// (word-initial consonants, stressed nuclei), and the tags feed the
// sonority bonus of the sound-class-aware scorer.
package prosody

import "strings"

// Prosodic position tags.
const (
	TagInitial   byte = '#' // word-initial consonant
	TagAscending byte = 'C' // pre-nucleus consonant
	TagNucleus   byte = 'V' // first vowel of a word
	TagVowel     byte = 'v' // any further vowel
	TagDescend   byte = 'c' // post-nucleus consonant
	TagFinal     byte = '$' // word-final consonant
	TagTone      byte = 'T' // tone marker
	TagBreak     byte = '_' // word break
)

// RestrictedTags are the tags whose positions may not be gapped against
// unrestricted counterparts away from a sequence edge.
const RestrictedTags = "T_"

// vowel base characters, IPA plus common transcription practice
const vowels = "aeiouyæøɛɔəɪʊʏœɑɒʌɨɯɤãẽĩõũɐɜʉ"

// tone letters and tone numbers
const tones = "˥˦˧˨˩⁰¹²³⁴⁵⁰0123456789"

// Kind of a single token.
type Kind uint8

const (
	Consonant Kind = iota
	Vowel
	Tone
	Break
)

// KindOf classifies one token by its first base character.
func KindOf(token string) Kind {
	if token == "_" || token == "#" {
		return Break
	}
	for _, r := range token {
		if strings.ContainsRune(vowels, r) {
			return Vowel
		}
		if strings.ContainsRune(tones, r) {
			return Tone
		}
		break
	}
	return Consonant
}

// String derives the prosodic position string of a token sequence, one
// tag per token.
func String(tokens []string) []byte {
	pros := make([]byte, len(tokens))

	start := 0
	for i := 0; i <= len(tokens); i++ {
		if i < len(tokens) && KindOf(tokens[i]) != Break {
			continue
		}
		tagWord(tokens[start:i], pros[start:i])
		if i < len(tokens) {
			pros[i] = TagBreak
		}
		start = i + 1
	}

	return pros
}

// tagWord tags one word, a break-free stretch of tokens.
func tagWord(tokens []string, pros []byte) {
	firstVowel := -1
	lastVowel := -1
	for i, t := range tokens {
		if KindOf(t) == Vowel {
			if firstVowel < 0 {
				firstVowel = i
			}
			lastVowel = i
		}
	}

	for i, t := range tokens {
		switch KindOf(t) {
		case Tone:
			pros[i] = TagTone
		case Vowel:
			if i == firstVowel {
				pros[i] = TagNucleus
			} else {
				pros[i] = TagVowel
			}
		default:
			switch {
			case firstVowel < 0 || i < firstVowel:
				if i == 0 {
					pros[i] = TagInitial
				} else {
					pros[i] = TagAscending
				}
			case i > lastVowel && i == len(tokens)-1:
				pros[i] = TagFinal
			default:
				pros[i] = TagDescend
			}
		}
	}
}

// weight multipliers per tag: strong positions cost more to gap
var weightOf = map[byte]float64{
	TagInitial:   2.0,
	TagAscending: 1.75,
	TagNucleus:   1.5,
	TagVowel:     1.3,
	TagDescend:   1.1,
	TagFinal:     0.8,
	TagTone:      1.0,
	TagBreak:     1.0,
}

// Weights converts a prosodic string into a gap-weight vector: the cost
// of opening a gap right before each position, gapOpen scaled by the
// structural strength of the position.
func Weights(pros []byte, gapOpen float64) []float64 {
	weights := make([]float64, len(pros))
	for i, t := range pros {
		m, ok := weightOf[t]
		if !ok {
			m = 1.0
		}
		weights[i] = gapOpen * m
	}
	return weights
}
