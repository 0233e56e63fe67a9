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
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lingpy/palign/palign/model"
)

func TestPrepareWord(t *testing.T) {
	m := model.Default()

	w := prepareWord("hant", m, false, -1)
	if !reflect.DeepEqual(w.tokens, []string{"h", "a", "n", "t"}) {
		t.Fatalf("tokens: %v", w.tokens)
	}
	if !reflect.DeepEqual(w.seq.Tokens, []string{"K", "A", "N", "T"}) {
		t.Fatalf("class labels: %v", w.seq.Tokens)
	}
	if string(w.seq.Pros) != "#Vc$" {
		t.Fatalf("prosodic string: %s", w.seq.Pros)
	}
	if len(w.seq.Weights) != 4 {
		t.Fatalf("weight count: %d", len(w.seq.Weights))
	}

	// basic mode keeps the surface tokens and drops the annotations
	w = prepareWord("hant", m, true, -1)
	if !reflect.DeepEqual(w.seq.Tokens, []string{"h", "a", "n", "t"}) {
		t.Fatalf("basic tokens: %v", w.seq.Tokens)
	}
	if w.seq.Annotated() {
		t.Fatal("basic sequence should not carry annotations")
	}
}

func TestRestoreTokens(t *testing.T) {
	aligned := []string{"K", "A", "-", "N", "T"}
	orig := []string{"h", "a", "n", "t"}
	got := restoreTokens(aligned, orig)
	want := []string{"h", "a", "-", "n", "t"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("restoreTokens: got %v, want %v", got, want)
	}
}

func TestReadWordPairs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.tsv")
	data := "# comment\nwaldemar\tvladimir\n\nhant\thand\tGerman\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	pairs, err := readWordPairs(path)
	if err != nil {
		t.Fatal(err)
	}
	want := [][2]string{
		{"waldemar", "vladimir"},
		{"hant", "hand"},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Fatalf("readWordPairs: got %v, want %v", pairs, want)
	}

	bad := filepath.Join(t.TempDir(), "bad.tsv")
	if err = os.WriteFile(bad, []byte("loneword\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err = readWordPairs(bad); err == nil {
		t.Fatal("expected an error for a line without two columns")
	}
}

func TestReadWordList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.tsv")
	data := "# header\nhant\tGerman\nhand\nsunu\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	words, err := readWordList(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"hant", "hand", "sunu"}
	if !reflect.DeepEqual(words, want) {
		t.Fatalf("readWordList: got %v, want %v", words, want)
	}
}
