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

package cmd

import (
	"bufio"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/shenwei356/util/pathutil"
	"github.com/shenwei356/xopen"

	"github.com/lingpy/palign/palign/align"
	"github.com/lingpy/palign/palign/model"
	"github.com/lingpy/palign/palign/prosody"
	"github.com/lingpy/palign/palign/token"
)

// word is one prepared input: the raw transcription, its surface tokens,
// and the sequence handed to the engine (sound-class labels plus
// prosodic annotations, or the bare tokens in basic mode).
type word struct {
	raw    string
	tokens []string
	seq    align.Sequence
}

// prepareWord tokenizes a transcription and derives the class labels,
// prosodic string and gap weights the engine consumes.
func prepareWord(raw string, m *model.Model, basic bool, gapOpen float64) word {
	tokens := token.Tokenize(raw)
	w := word{raw: raw, tokens: tokens}

	if basic || m == nil {
		w.seq = align.Sequence{Tokens: tokens}
		return w
	}

	pros := prosody.String(tokens)
	w.seq = align.Sequence{
		Tokens:  m.Classify(tokens),
		Pros:    pros,
		Weights: prosody.Weights(pros, gapOpen),
	}
	return w
}

// readWordPairs reads tab-separated word pairs, one pair per line.
// Empty lines and lines starting with "#" are skipped.
func readWordPairs(file string) ([][2]string, error) {
	fh, err := xopen.Ropen(file)
	if err != nil {
		return nil, errors.Wrap(err, file)
	}

	pairs := make([][2]string, 0, 1024)
	scanner := bufio.NewScanner(fh)
	var line string
	for scanner.Scan() {
		line = strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items := strings.SplitN(line, "\t", 3)
		if len(items) < 2 {
			return nil, errors.Errorf("%s: need two tab-separated words: %s", file, line)
		}
		pairs = append(pairs, [2]string{items[0], items[1]})
	}
	if err = scanner.Err(); err != nil {
		return nil, errors.Wrap(err, file)
	}
	return pairs, fh.Close()
}

// readWordList reads one word per line (first column of a TSV).
func readWordList(file string) ([]string, error) {
	fh, err := xopen.Ropen(file)
	if err != nil {
		return nil, errors.Wrap(err, file)
	}

	words := make([]string, 0, 1024)
	scanner := bufio.NewScanner(fh)
	var line string
	for scanner.Scan() {
		line = strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.IndexByte(line, '\t'); i >= 0 {
			line = line[:i]
		}
		words = append(words, line)
	}
	if err = scanner.Err(); err != nil {
		return nil, errors.Wrap(err, file)
	}
	return words, fh.Close()
}

// restoreTokens substitutes the class labels of a gapped alignment row
// by the surface tokens they came from. Stripping gaps from a row always
// recovers the aligned range in input order, so the substitution is a
// simple scan.
func restoreTokens(aligned, orig []string) []string {
	out := make([]string, len(aligned))
	next := 0
	for i, s := range aligned {
		if s == align.Gap {
			out[i] = align.Gap
			continue
		}
		out[i] = orig[next]
		next++
	}
	return out
}

// loadModel returns the built-in model, or one loaded from a TOML file
// when a path is given.
func loadModel(path string) (*model.Model, error) {
	if path == "" {
		return model.Default(), nil
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.Wrap(err, "expanding model path")
	}
	ok, err := pathutil.Exists(path)
	if err != nil {
		return nil, errors.Wrapf(err, "checking model file: %s", path)
	}
	if !ok {
		return nil, errors.Errorf("model file not found: %s", path)
	}
	return model.Load(path)
}
