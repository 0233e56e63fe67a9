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
	"fmt"
	"os"
	"time"

	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/lingpy/palign/palign/align"
)

var distCmd = &cobra.Command{
	Use:   "dist",
	Short: "compute a pairwise distance matrix for a word list",
	Long: `compute a pairwise distance matrix for a word list

Attentions:
  1. Input is (gzipped) text from files or stdin, one transcription per
     line (only the first tab-separated column is read).
  2. The output is a square PHYLIP distance matrix, ready for
     phylogenetic clustering tools.

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)

		var fhLog *os.File
		if opt.Log2File {
			fhLog = addLog(opt.LogFile, opt.Verbose)
		}

		outputLog := opt.Verbose || opt.Log2File

		timeStart := time.Now()
		defer func() {
			if outputLog {
				log.Info()
				log.Infof("elapsed time: %s", time.Since(timeStart))
				log.Info()
			}
			if opt.Log2File {
				fhLog.Close()
			}
		}()

		// ---------------------------------------------------------------

		outFile := getFlagString(cmd, "out-file")
		modeName := getFlagString(cmd, "mode")
		mode, err := align.ParseMode(modeName)
		if err != nil {
			checkError(fmt.Errorf("invalid value of flag -m/--mode: %s", modeName))
		}

		aOpt := &align.Options{
			Mode:           mode,
			GapOpen:        getFlagNonPositiveFloat64(cmd, "gap-open"),
			Scale:          getFlagFraction(cmd, "scale"),
			Factor:         getFlagFloat64(cmd, "factor"),
			Restricted:     align.DefaultOptions.Restricted,
			Basic:          getFlagBool(cmd, "basic"),
			ReturnDistance: true,
		}

		mdl, err := loadModel(getFlagString(cmd, "model"))
		checkError(err)
		if !aOpt.Basic {
			aOpt.Scorer = mdl.ScoreMatrix()
		}

		// ---------------------------------------------------------------
		// input

		files := args
		if len(files) == 0 {
			files = []string{"-"}
		}

		words := make([]string, 0, 1024)
		for _, file := range files {
			ws, err := readWordList(file)
			checkError(err)
			words = append(words, ws...)
		}
		if len(words) < 2 {
			checkError(fmt.Errorf("at least two words needed, %d given", len(words)))
		}
		if outputLog {
			log.Infof("palign v%s", VERSION)
			log.Info()
			log.Infof("%d word(s) loaded, %d pair(s) to align", len(words), len(words)*(len(words)-1)/2)
		}

		seqs := make([]align.Sequence, len(words))
		for i, w := range words {
			seqs[i] = prepareWord(w, mdl, aOpt.Basic, aOpt.GapOpen).seq
		}

		// ---------------------------------------------------------------
		// align all pairs

		results, err := align.AlignAllPairs(seqs, aOpt, opt.NumCPUs)
		checkError(err)

		n := len(words)
		dists := make([]float64, n*n)
		flat := make([]float64, 0, len(results))
		for _, pr := range results {
			dists[pr.I*n+pr.J] = pr.Distance
			dists[pr.J*n+pr.I] = pr.Distance
			flat = append(flat, pr.Distance)
			align.RecycleResult(pr.Result)
		}

		if outputLog && len(flat) > 0 {
			log.Infof("distances: min %.4f, mean %.4f, max %.4f",
				floats.Min(flat), stat.Mean(flat, nil), floats.Max(flat))
		}

		// ---------------------------------------------------------------
		// output, square PHYLIP

		outfh, err := xopen.Wopen(outFile)
		checkError(err)
		defer outfh.Close()

		fmt.Fprintf(outfh, "%d\n", n)
		for i := 0; i < n; i++ {
			fmt.Fprintf(outfh, "%-10s", phylipName(words[i], i))
			for j := 0; j < n; j++ {
				fmt.Fprintf(outfh, " %.4f", dists[i*n+j])
			}
			fmt.Fprintln(outfh)
		}

		if outputLog {
			log.Infof("distance matrix saved to: %s", outFile)
		}
	},
}

// phylipName fits a word into the 10-character PHYLIP name column,
// falling back to an index when the word does not fit.
func phylipName(w string, i int) string {
	if len(w) <= 10 {
		return w
	}
	return fmt.Sprintf("w%d", i)
}

func init() {
	RootCmd.AddCommand(distCmd)

	distCmd.Flags().StringP("out-file", "o", "-",
		formatFlagUsage(`Out file, supports the ".gz" suffix ("-" for stdout).`))

	distCmd.Flags().StringP("mode", "m", "global",
		formatFlagUsage(`Alignment mode: global, local, overlap or dialign.`))

	distCmd.Flags().Float64P("gap-open", "g", -1,
		formatFlagUsage(`Gap opening penalty (<= 0).`))

	distCmd.Flags().Float64P("scale", "s", 0.5,
		formatFlagUsage(`Penalty scale for gap extension, in [0, 1].`))

	distCmd.Flags().Float64P("factor", "f", 0.3,
		formatFlagUsage(`Sonority bonus for matches in equivalent prosodic positions.`))

	distCmd.Flags().StringP("model", "M", "",
		formatFlagUsage(`Sound-class model file in TOML format (built-in SCA-style model when empty).`))

	distCmd.Flags().BoolP("basic", "b", false,
		formatFlagUsage(`Plain token alignment: identity scoring, scalar gap penalty, no prosody.`))
}
