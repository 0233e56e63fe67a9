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
	"strings"
	"sync"
	"time"

	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/lingpy/palign/palign/align"
)

var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "align word pairs",
	Long: `align word pairs

Attentions:
  1. Input is (gzipped) tab-separated text from files or stdin, two
     transcriptions per line.
  2. Without --basic, tokens are mapped to sound classes and aligned
     with prosody-weighted gap penalties; the output shows the surface
     tokens again.

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
			Restricted:     getFlagString(cmd, "restricted"),
			Basic:          getFlagBool(cmd, "basic"),
			ReturnDistance: getFlagBool(cmd, "distance"),
		}

		mdl, err := loadModel(getFlagString(cmd, "model"))
		checkError(err)
		if !aOpt.Basic {
			aOpt.Scorer = mdl.ScoreMatrix()
		}

		if outputLog {
			log.Infof("palign v%s", VERSION)
			log.Info()
			log.Infof("mode: %s, gap open: %.2f, scale: %.2f, factor: %.2f",
				mode, aOpt.GapOpen, aOpt.Scale, aOpt.Factor)
			if !aOpt.Basic {
				log.Infof("sound-class model: %s", mdl.Name)
			}
		}

		// ---------------------------------------------------------------
		// input

		files := args
		if len(files) == 0 {
			files = []string{"-"}
		}

		pairs := make([][2]string, 0, 1024)
		for _, file := range files {
			ps, err := readWordPairs(file)
			checkError(err)
			pairs = append(pairs, ps...)
		}
		if outputLog {
			log.Infof("%d word pair(s) loaded", len(pairs))
		}

		// ---------------------------------------------------------------
		// align

		type job struct {
			idx  int
			a, b word
		}
		type answer struct {
			idx    int
			a, b   word
			result *align.Result
		}

		var pbs *mpb.Progress
		var bar *mpb.Bar
		var chDuration chan time.Duration
		var doneDuration chan int
		if opt.Verbose {
			pbs = mpb.New(mpb.WithWidth(40), mpb.WithOutput(os.Stderr))
			bar = pbs.AddBar(int64(len(pairs)),
				mpb.PrependDecorators(
					decor.Name("aligned pairs: ", decor.WC{W: len("aligned pairs: "), C: decor.DindentRight}),
					decor.Name("", decor.WCSyncSpaceR),
					decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
				),
				mpb.AppendDecorators(
					decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
					decor.EwmaETA(decor.ET_STYLE_GO, 10),
					decor.OnComplete(decor.Name(""), ". done"),
				),
			)
			chDuration = make(chan time.Duration, opt.NumCPUs)
			doneDuration = make(chan int)
			go func() {
				for t := range chDuration {
					bar.EwmaIncrBy(1, t)
				}
				doneDuration <- 1
			}()
		}

		results := make([]answer, len(pairs))

		var wg sync.WaitGroup
		ch := make(chan job, opt.NumCPUs)
		for t := 0; t < opt.NumCPUs; t++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				alg := align.NewAligner()
				for jb := range ch {
					t0 := time.Now()
					r, err := alg.AlignPair(jb.a.seq, jb.b.seq, aOpt)
					checkError(err)
					results[jb.idx] = answer{idx: jb.idx, a: jb.a, b: jb.b, result: r}
					if opt.Verbose {
						chDuration <- time.Since(t0)
					}
				}
			}()
		}
		for i, p := range pairs {
			ch <- job{
				idx: i,
				a:   prepareWord(p[0], mdl, aOpt.Basic, aOpt.GapOpen),
				b:   prepareWord(p[1], mdl, aOpt.Basic, aOpt.GapOpen),
			}
		}
		close(ch)
		wg.Wait()

		if opt.Verbose {
			close(chDuration)
			<-doneDuration
			pbs.Wait()
		}

		// ---------------------------------------------------------------
		// output

		outfh, err := xopen.Wopen(outFile)
		checkError(err)
		defer outfh.Close()

		for _, ans := range results {
			r := ans.result

			rowA, rowB := r.AlignedA, r.AlignedB
			if !aOpt.Basic {
				// map the class labels back to surface tokens
				rowA = restoreTokens(rowA, ans.a.tokens[r.StartA:r.EndA])
				rowB = restoreTokens(rowB, ans.b.tokens[r.StartB:r.EndB])
			}

			fmt.Fprintf(outfh, "%s\t%s\t%s\t%s\t%.4f",
				ans.a.raw, ans.b.raw,
				strings.Join(rowA, " "), strings.Join(rowB, " "),
				r.Score)
			if r.HasDistance {
				fmt.Fprintf(outfh, "\t%.4f", r.Distance)
			}
			fmt.Fprintln(outfh)

			align.RecycleResult(r)
		}

		if outputLog {
			log.Infof("alignments saved to: %s", outFile)
		}
	},
}

func init() {
	RootCmd.AddCommand(alignCmd)

	alignCmd.Flags().StringP("out-file", "o", "-",
		formatFlagUsage(`Out file, supports the ".gz" suffix ("-" for stdout).`))

	alignCmd.Flags().StringP("mode", "m", "global",
		formatFlagUsage(`Alignment mode: global, local, overlap or dialign.`))

	alignCmd.Flags().Float64P("gap-open", "g", -1,
		formatFlagUsage(`Gap opening penalty (<= 0).`))

	alignCmd.Flags().Float64P("scale", "s", 0.5,
		formatFlagUsage(`Penalty scale for gap extension, in [0, 1].`))

	alignCmd.Flags().Float64P("factor", "f", 0.3,
		formatFlagUsage(`Sonority bonus for matches in equivalent prosodic positions.`))

	alignCmd.Flags().StringP("restricted", "r", align.DefaultOptions.Restricted,
		formatFlagUsage(`Prosodic tags that resist gapping against unrestricted positions.`))

	alignCmd.Flags().StringP("model", "M", "",
		formatFlagUsage(`Sound-class model file in TOML format (built-in SCA-style model when empty).`))

	alignCmd.Flags().BoolP("basic", "b", false,
		formatFlagUsage(`Plain token alignment: identity scoring, scalar gap penalty, no prosody.`))

	alignCmd.Flags().BoolP("distance", "d", false,
		formatFlagUsage(`Additionally output the normalized distance of each pair.`))
}
