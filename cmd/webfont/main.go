// seehuhn.de/go/webfont - analysis and subsetting of fonts for web delivery
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Webfont analyzes and subsets font files for web delivery.
//
// Every subcommand prints exactly one JSON document to stdout.  Failures
// are reported as a document with an "error" field and a non-zero exit
// code, so automated callers only ever need to parse one stream.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/webfont/classify"
	"seehuhn.de/go/webfont/coverage"
	"seehuhn.de/go/webfont/fontio"
	"seehuhn.de/go/webfont/metrics"
	"seehuhn.de/go/webfont/subsetter"
	"seehuhn.de/go/webfont/urange"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var code int
	switch os.Args[1] {
	case "coverage":
		code = runCoverage(os.Args[2:])
	case "classify":
		code = runClassify(os.Args[2:])
	case "subset":
		code = runSubset(os.Args[2:])
	case "metrics":
		code = runMetrics(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		usage()
		code = 2
	}
	os.Exit(code)
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: %s <command> [options] ...

commands:
  coverage font ranges            which requested code points the font covers
  classify font                   emoji/symbol/barcode/non-textual flags
  subset   input output ranges    cut the font down to the requested repertoire
  metrics  font ranges            advance-width statistics over the repertoire

Ranges are comma-separated U+XXXX or U+XXXX-YYYY tokens.
`, os.Args[0])
}

// prettyFlag registers -pretty; the default follows whether stdout is a
// terminal.
func prettyFlag(fs *flag.FlagSet) *bool {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	return fs.Bool("pretty", isTTY, "indent the JSON output")
}

func emit(v any, pretty bool) {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	err := enc.Encode(v)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func emitError(err error, pretty bool) int {
	emit(map[string]string{"error": err.Error()}, pretty)
	return 1
}

func runCoverage(args []string) int {
	fs := flag.NewFlagSet("coverage", flag.ExitOnError)
	pretty := prettyFlag(fs)
	fs.Parse(args)
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: webfont coverage [options] font ranges")
		return 2
	}

	font, err := fontio.Open(fs.Arg(0))
	if err != nil {
		return emitError(err, *pretty)
	}
	rep := coverage.Check(font, fs.Arg(1), urange.DefaultCache)
	rep.Font = fs.Arg(0)
	emit(rep, *pretty)
	return 0
}

func runClassify(args []string) int {
	fs := flag.NewFlagSet("classify", flag.ExitOnError)
	pretty := prettyFlag(fs)
	fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: webfont classify [options] font")
		return 2
	}

	font, err := fontio.Open(fs.Arg(0))
	if err != nil {
		return emitError(err, *pretty)
	}
	emit(classify.Classify(font), *pretty)
	return 0
}

func runSubset(args []string) int {
	fs := flag.NewFlagSet("subset", flag.ExitOnError)
	pretty := prettyFlag(fs)
	quiet := fs.Bool("quiet", false, "compact JSON output")
	noNames := fs.Bool("no-preserve-names", false, "strip name records from the output")
	noDirect := fs.Bool("no-direct-woff2", false, "always use woff2_compress for WOFF2 output")
	fs.Parse(args)
	if fs.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "usage: webfont subset [options] input output ranges")
		return 2
	}
	indent := *pretty && !*quiet

	opt := subsetter.DefaultOptions()
	opt.PreserveNames = !*noNames
	opt.AllowDirectWOFF2 = !*noDirect
	opt.Cache = urange.DefaultCache

	rep, err := subsetter.Subset(fs.Arg(0), fs.Arg(1), fs.Arg(2), opt)
	if err != nil {
		return emitError(err, indent)
	}
	emit(rep, indent)
	return 0
}

func runMetrics(args []string) int {
	fs := flag.NewFlagSet("metrics", flag.ExitOnError)
	pretty := prettyFlag(fs)
	quiet := fs.Bool("quiet", false, "compact JSON output")
	fs.Parse(args)
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: webfont metrics [options] font ranges")
		return 2
	}
	indent := *pretty && !*quiet

	font, err := fontio.Open(fs.Arg(0))
	if err != nil {
		return emitError(err, indent)
	}
	rep, err := metrics.Compute(font, fs.Arg(1), urange.DefaultCache)
	if err != nil {
		return emitError(err, indent)
	}
	emit(rep, indent)
	return 0
}
