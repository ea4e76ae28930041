package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/apriori/cmd"
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/index"
	"github.com/timtadh/apriori/miner"
	"github.com/timtadh/apriori/reporters"
)

func init() {
	cmd.UsageMessage = "apriori --help"
	cmd.ExtendedMessage = `
apriori - mine frequent itemsets and association rules

$ apriori [options] [<input-path>...]

Reads transactions from the given input paths (or stdin when none are
given), one transaction per line, items separated by the delimiter.
Mines frequent itemsets with the Apriori level-wise algorithm and
derives association rules from them.

Note: You may supply an <input-path> as a regular file, a gzipped file
      (extension '.gz'), or a directory of such files.

Options
    -h, --help                view this message
    -o, --output=<path>       output file (default: stdout)
    -s, --support=<float>     minimum support ratio, must be > 0
                              (default: 0.1)
    -c, --confidence=<float>  minimum confidence of reported rules
                              (default: 0.5)
    -l, --max-length=<int>    maximum itemset size (default: unbounded)
    -d, --delimiter=<str>     item delimiter (default: tab)
    -f, --format=<name>       output format, json or tsv (default: json)
    --count=<path>            also write the relation record count to
                              this file
    --cache=<path>            directory for the on disk inverted index
                              (default: anonymous memory maps)
                              NB: will overwrite contents of dir
    --skip-log=<level>        don't output the given log level
    -q, --quiet               don't log mined relations to stderr

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

Formats
    json    one JSON object per relation record:
            {"items": [...], "support": f, "ordered_statistics":
             [{"items_base": [...], "items_add": [...],
               "confidence": f, "lift": f}]}
            item arrays are sorted lexicographically

    tsv     one line per statistic with singleton antecedent and
            consequent: base, add, support, confidence, lift. Rules
            over larger itemsets are skipped in this format.

Input Example (tab delimited)
    beer	nuts	diapers
    beer	diapers
    nuts	cheese
`
}

func main() {
	os.Exit(run())
}

func run() int {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"ho:s:c:l:d:f:q",
		[]string{
			"help",
			"output=",
			"support=",
			"confidence=",
			"max-length=",
			"delimiter=",
			"format=",
			"count=",
			"cache=",
			"skip-log=",
			"quiet",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	output := ""
	support := 0.1
	confidence := 0.5
	maxLength := 0
	delimiter := "\t"
	format := "json"
	countFile := ""
	cache := ""
	quiet := false
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-o", "--output":
			output = cmd.AssertFile(oa.Arg())
		case "-s", "--support":
			support = cmd.ParseFloat(oa.Arg())
		case "-c", "--confidence":
			confidence = cmd.ParseFloat(oa.Arg())
		case "-l", "--max-length":
			maxLength = cmd.ParseInt(oa.Arg())
		case "-d", "--delimiter":
			delimiter = oa.Arg()
		case "-f", "--format":
			format = oa.Arg()
		case "--count":
			countFile = cmd.AssertFile(oa.Arg())
		case "--cache":
			cache = cmd.EmptyDir(oa.Arg())
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "-q", "--quiet":
			quiet = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if support <= 0 {
		fmt.Fprintf(os.Stderr, "Support <= 0, must be > 0\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if maxLength < 0 {
		fmt.Fprintf(os.Stderr, "Max length < 0, must be >= 0\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if format != "json" && format != "tsv" {
		fmt.Fprintf(os.Stderr, "Unknown format '%v'\n", format)
		fmt.Fprintln(os.Stderr, "formats: json, tsv")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	for _, input := range args {
		cmd.AssertFileOrDirExists(input)
	}

	if cpuProfile != "" {
		errors.Logf("DEBUG", "starting cpu profile: %v", cpuProfile)
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			errors.Logf("DEBUG", "closing cpu profile")
			pprof.StopCPUProfile()
			err := f.Close()
			errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
		}()
	}

	conf := &config.Config{
		Cache:      cache,
		Output:     output,
		Support:    support,
		Confidence: confidence,
		MaxLength:  maxLength,
	}

	input, closeall := cmd.Inputs(args)
	errors.Logf("INFO", "loading transactions")
	idx, err := index.Load(conf, delimiter, input)
	closeall()
	if err != nil {
		fmt.Fprintf(os.Stderr, "There was error during the loading process\n")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	defer idx.Close()
	errors.Logf("INFO", "loaded %v transactions over %v items", idx.Len(), idx.Items())

	var out io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "There was error creating the output file\n")
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		defer f.Close()
		out = f
	}

	var fmtRptr miner.Reporter
	switch format {
	case "json":
		fmtRptr = reporters.NewJSON(out, idx)
	case "tsv":
		fmtRptr = reporters.NewTSV(out, idx)
	}
	rptrs := make([]miner.Reporter, 0, 3)
	if !quiet {
		rptrs = append(rptrs, reporters.NewLog(idx, "INFO", "mined"))
	}
	rptrs = append(rptrs, fmtRptr)
	if countFile != "" {
		count, err := reporters.NewCount(countFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		rptrs = append(rptrs, count)
	}
	rptr := &reporters.Chain{Reporters: rptrs}

	relations, err := miner.Apriori(idx, miner.Options{
		MinSupport:    conf.Support,
		MaxLength:     conf.MaxLength,
		MinConfidence: conf.Confidence,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	errors.Logf("INFO", "about to start mining")
	mineErr := miner.DoRelations(relations, rptr.Report)

	code := 0
	if e := rptr.Close(); e != nil {
		errors.Logf("ERROR", "error closing %v", e)
		code++
	}
	if mineErr != nil {
		fmt.Fprintf(os.Stderr, "There was error during the mining process\n")
		fmt.Fprintf(os.Stderr, "%v\n", mineErr)
		code++
	} else {
		errors.Logf("INFO", "Done!")
	}
	return code
}
