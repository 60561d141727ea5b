package cmd

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
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"math/rand"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/miners"
	"github.com/timtadh/apriori/miners/apriori"
	"github.com/timtadh/apriori/reporters"
	"github.com/timtadh/apriori/types/itemset"
)

func init() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	if urandom, err := os.Open("/dev/urandom"); err != nil {
		panic(err)
	} else {
		seed := make([]byte, 8)
		if _, err := urandom.Read(seed); err == nil {
			rand.Seed(int64(binary.BigEndian.Uint64(seed)))
		}
		urandom.Close()
	}
}

var ErrorCodes map[string]int = map[string]int{
	"usage":       0,
	"error":       1,
	"version":     2,
	"opts":        3,
	"badint":      5,
	"baddir":      6,
	"badfile":     7,
	"badduration": 8,
	"badinput":    9,
	"timeout":     10,
}

var UsageMessage string
var ExtendedMessage string

func Usage(code int) {
	fmt.Fprintln(os.Stderr, UsageMessage)
	if code == 0 {
		fmt.Fprintln(os.Stdout, ExtendedMessage)
		code = ErrorCodes["usage"]
	} else {
		fmt.Fprintln(os.Stderr, "Try -h or --help for help")
	}
	os.Exit(code)
}

func Input(input_path string) (reader io.Reader, closeall func(), err error) {
	stat, err := os.Stat(input_path)
	if err != nil {
		return nil, nil, &itemset.InvalidInput{Reason: "could not stat " + input_path, Err: err}
	}
	if stat.IsDir() {
		return InputDir(input_path)
	} else {
		return InputFile(input_path)
	}
}

func InputFile(input_path string) (reader io.Reader, closeall func(), err error) {
	freader, err := os.Open(input_path)
	if err != nil {
		return nil, nil, &itemset.InvalidInput{Reason: "could not open " + input_path, Err: err}
	}
	if strings.HasSuffix(input_path, ".gz") {
		greader, err := gzip.NewReader(freader)
		if err != nil {
			freader.Close()
			return nil, nil, &itemset.InvalidInput{Reason: "could not gunzip " + input_path, Err: err}
		}
		return greader, func() {
			greader.Close()
			freader.Close()
		}, nil
	}
	return freader, func() {
		freader.Close()
	}, nil
}

// InputDir concatenates the files of input_dir in name order. A file whose
// last line lacks a newline gets one, so its last record does not run into
// the first record of the next file.
func InputDir(input_dir string) (reader io.Reader, closeall func(), err error) {
	var readers []io.Reader
	var closers []func()
	closeall = func() {
		for _, closer := range closers {
			closer()
		}
	}
	dir, err := ioutil.ReadDir(input_dir)
	if err != nil {
		return nil, nil, &itemset.InvalidInput{Reason: "could not list " + input_dir, Err: err}
	}
	for _, info := range dir {
		if info.IsDir() {
			continue
		}
		creader, closer, err := InputFile(path.Join(input_dir, info.Name()))
		if err != nil {
			closeall()
			return nil, nil, err
		}
		readers = append(readers, &lineTerminated{r: creader})
		closers = append(closers, closer)
	}
	return io.MultiReader(readers...), closeall, nil
}

type lineTerminated struct {
	r    io.Reader
	last byte
	seen bool
	eof  bool
}

func (l *lineTerminated) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if l.eof {
		if l.seen && l.last != '\n' {
			p[0] = '\n'
			l.last = '\n'
			return 1, nil
		}
		return 0, io.EOF
	}
	n, err := l.r.Read(p)
	if n > 0 {
		l.seen = true
		l.last = p[n-1]
	}
	if err == io.EOF {
		l.eof = true
		if n == 0 {
			return l.Read(p)
		}
		err = nil
	}
	return n, err
}

func ParseInt(str string) int {
	i, err := strconv.Atoi(str)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected an int\n", str)
		Usage(ErrorCodes["badint"])
	}
	return i
}

func ParseDuration(str string) time.Duration {
	d, err := time.ParseDuration(str)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected a duration (eg. 90s, 5m)\n", str)
		Usage(ErrorCodes["badduration"])
	}
	return d
}

// ParseDelimiter accepts a single character, or the names tab and space.
func ParseDelimiter(str string) (rune, error) {
	switch str {
	case "tab", `\t`:
		return '\t', nil
	case "space":
		return ' ', nil
	}
	if utf8.RuneCountInString(str) != 1 {
		return 0, errors.Errorf("delimiter must be a single character, got '%v'", str)
	}
	r, _ := utf8.DecodeRuneInString(str)
	if r == '\n' || r == '\r' || r == '"' || r == utf8.RuneError {
		return 0, errors.Errorf("'%v' can not be used as a delimiter", str)
	}
	return r, nil
}

func EmptyDir(dir string) string {
	dir = path.Clean(dir)
	_, err := os.Stat(dir)
	if err != nil && os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0775)
		if err != nil {
			log.Fatal(err)
		}
	} else if err != nil {
		log.Fatal(err)
	} else {
		// something already exists lets delete it
		err := os.RemoveAll(dir)
		if err != nil {
			log.Fatal(err)
		}
		err = os.MkdirAll(dir, 0775)
		if err != nil {
			log.Fatal(err)
		}
	}
	return dir
}

func AssertFileOrDirExists(fname string) string {
	fname = path.Clean(fname)
	_, err := os.Stat(fname)
	if err != nil && os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "File '%s' does not exist!\n", fname)
		Usage(ErrorCodes["badfile"])
	} else if err != nil {
		fmt.Fprintf(os.Stderr, err.Error())
		Usage(ErrorCodes["badfile"])
	}
	return fname
}

func AssertFile(fname string) string {
	fname = path.Clean(fname)
	fi, err := os.Stat(fname)
	if err != nil && os.IsNotExist(err) {
		return fname
	} else if err != nil {
		fmt.Fprintf(os.Stderr, err.Error())
		Usage(ErrorCodes["badfile"])
	} else if fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Passed in file was a directory, %s", fname)
		Usage(ErrorCodes["badfile"])
	}
	return fname
}

type Loader func([]string, *config.Config) (itemset.Loader, []string)

func csvLoader(argv []string, conf *config.Config) (itemset.Loader, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hd:", []string{"help", "delimiter="},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	comma := ','
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-d", "--delimiter":
			comma, err = ParseDelimiter(oa.Arg())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				Usage(ErrorCodes["opts"])
			}
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	return itemset.NewCSVLoader(conf, comma), args
}

func datLoader(argv []string, conf *config.Config) (itemset.Loader, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h", []string{"help"},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	return itemset.NewDatLoader(conf), args
}

type Reporter func(map[string]Reporter, []string, itemset.Formatter, *config.Config) (miners.Reporter, []string)

func logReporter(rptrs map[string]Reporter, argv []string, fmtr itemset.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hl:p:",
		[]string{
			"help",
			"level=",
			"prefix=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	level := "INFO"
	prefix := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-l", "--level":
			level = oa.Arg()
		case "-p", "--prefix":
			prefix = oa.Arg()
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	return reporters.NewLog(level, prefix), args
}

func fileReporter(rptrs map[string]Reporter, argv []string, fmtr itemset.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hp:",
		[]string{
			"help",
			"patterns=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	patterns := "maximal"
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-p", "--patterns":
			patterns = oa.Arg()
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	fr, err := reporters.NewFile(conf, fmtr, patterns)
	if err != nil {
		errors.Logf("ERROR", "There was error creating output files\n")
		errors.Logf("ERROR", "%v\n", err)
		os.Exit(1)
	}
	return fr, args
}

func dirReporter(rptrs map[string]Reporter, argv []string, fmtr itemset.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hd:",
		[]string{
			"help",
			"dir-name=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	dir := "patterns"
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-d", "--dir-name":
			dir = oa.Arg()
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	fr, err := reporters.NewDir(conf, fmtr, dir)
	if err != nil {
		errors.Logf("ERROR", "There was error creating output files\n")
		errors.Logf("ERROR", "%v", err)
		os.Exit(1)
	}
	return fr, args
}

func countReporter(rptrs map[string]Reporter, argv []string, fmtr itemset.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hf:",
		[]string{
			"help",
			"filename=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	filename := "count"
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-f", "--filename":
			filename = oa.Arg()
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	r, err := reporters.NewCount(conf, filename)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		os.Exit(1)
	}
	return r, args
}

func chainReporter(reports map[string]Reporter, argv []string, fmtr itemset.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h",
		[]string{
			"help",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		default:
			errors.Logf("ERROR", "Unknown flag '%v'", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	rptrs := make([]miners.Reporter, 0, 10)
	for len(args) >= 1 {
		if args[0] == "endchain" {
			args = args[1:]
			break
		}
		var rptr miners.Reporter
		rptr, args = inner(reports, args, fmtr, conf)
		rptrs = append(rptrs, rptr)
	}
	if len(rptrs) == 0 {
		errors.Logf("ERROR", "Empty chain")
		fmt.Fprintln(os.Stderr, "try: chain log file")
		Usage(ErrorCodes["opts"])
	}
	return &reporters.Chain{Reporters: rptrs}, args
}

func uniqueReporter(reports map[string]Reporter, argv []string, fmtr itemset.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args := noOpts(argv)
	if len(args) == 0 {
		errors.Logf("ERROR", "You must supply an inner reporter to unique")
		fmt.Fprintln(os.Stderr, "try: unique file")
		Usage(ErrorCodes["opts"])
	}
	rptr, args := inner(reports, args, fmtr, conf)
	return reporters.NewUnique(rptr), args
}

func skipReporter(reports map[string]Reporter, argv []string, fmtr itemset.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hn:",
		[]string{
			"help",
			"skip=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	skip := 1
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-n", "--skip":
			skip = ParseInt(oa.Arg())
		default:
			errors.Logf("ERROR", "Unknown flag '%v'", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	if skip <= 0 {
		fmt.Fprintf(os.Stderr, "skip must be > 0\n")
		Usage(ErrorCodes["opts"])
	}
	if len(args) == 0 {
		errors.Logf("ERROR", "You must supply an inner reporter to skip")
		fmt.Fprintln(os.Stderr, "try: skip -n 10 log")
		Usage(ErrorCodes["opts"])
	}
	rptr, args := inner(reports, args, fmtr, conf)
	return reporters.NewSkip(skip, rptr), args
}

func minSizeReporter(reports map[string]Reporter, argv []string, fmtr itemset.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hs:",
		[]string{
			"help",
			"size=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	size := 1
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-s", "--size":
			size = ParseInt(oa.Arg())
		default:
			errors.Logf("ERROR", "Unknown flag '%v'", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	if len(args) == 0 {
		errors.Logf("ERROR", "You must supply an inner reporter to min-size")
		fmt.Fprintln(os.Stderr, "try: min-size -s 2 file")
		Usage(ErrorCodes["opts"])
	}
	rptr, args := inner(reports, args, fmtr, conf)
	m, err := reporters.NewMinSize(size, rptr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating min-size reporter '%v'\n", err)
		Usage(ErrorCodes["opts"])
	}
	return m, args
}

func heapProfileReporter(rptrs map[string]Reporter, argv []string, fmtr itemset.Formatter, conf *config.Config) (miners.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hp:",
		[]string{
			"help",
			"profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	profile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-p", "--profile":
			profile = oa.Arg()
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	if profile == "" {
		fmt.Fprintf(os.Stderr, "You must supply a location to write the profile (-p) in heap-profile.\n")
		os.Exit(1)
	}
	r, err := reporters.NewHeapProfile(AssertFile(profile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "There was error creating output files\n")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	return r, args
}

func noOpts(argv []string) []string {
	args, optargs, err := getopt.GetOpt(argv, "h", []string{"help"})
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		default:
			errors.Logf("ERROR", "Unknown flag '%v'", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	return args
}

func inner(reports map[string]Reporter, args []string, fmtr itemset.Formatter, conf *config.Config) (miners.Reporter, []string) {
	if _, has := reports[args[0]]; !has {
		errors.Logf("ERROR", "Unknown reporter '%v'", args[0])
		fmt.Fprintln(os.Stderr, "Reporters:")
		for k := range reports {
			fmt.Fprintln(os.Stderr, "  ", k)
		}
		Usage(ErrorCodes["opts"])
	}
	return reports[args[0]](reports, args[1:], fmtr, conf)
}

var Loaders map[string]Loader = map[string]Loader{
	"csv": csvLoader,
	"dat": datLoader,
}

var Reporters map[string]Reporter = map[string]Reporter{
	"log":          logReporter,
	"file":         fileReporter,
	"dir":          dirReporter,
	"count":        countReporter,
	"chain":        chainReporter,
	"unique":       uniqueReporter,
	"skip":         skipReporter,
	"min-size":     minSizeReporter,
	"heap-profile": heapProfileReporter,
}

type Mode func(argv []string, conf *config.Config) (miners.Miner, []string)

// DefaultReporter is 'chain log file' when there is an output dir and
// 'log' otherwise.
func DefaultReporter(conf *config.Config) []string {
	if conf.Output == "" {
		return []string{"log"}
	}
	return []string{"chain", "log", "file"}
}

// Summary writes the result the way the command line reports it.
func Summary(w io.Writer, inputPath string, conf *config.Config, fmtr itemset.Formatter, result *miners.Result) {
	fmt.Fprintf(w, "Input file: %s\n", inputPath)
	fmt.Fprintf(w, "Min_sup %d\n", conf.Support)
	fmt.Fprintln(w, fmtr.FormatResult(result.Itemsets()))
	fmt.Fprintf(w, "End - total items: %d\n", len(result.Maximal))
	fmt.Fprintf(w, "Elapsed Time: %v seconds\n", result.Seconds())
}

// ExitCode maps a mining error to one of the ErrorCodes.
func ExitCode(err error) int {
	switch err.(type) {
	case nil:
		return 0
	case *itemset.InvalidInput:
		return ErrorCodes["badinput"]
	case *apriori.Timeout:
		return ErrorCodes["timeout"]
	default:
		return ErrorCodes["error"]
	}
}

func Main(args []string, conf *config.Config, modes map[string]Mode) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "You must supply a loader and a mode\n")
		Usage(ErrorCodes["opts"])
	} else if _, has := Loaders[args[0]]; !has {
		fmt.Fprintf(os.Stderr, "Unknown loader '%v'\n", args[0])
		fmt.Fprintln(os.Stderr, "Loaders:")
		for k := range Loaders {
			fmt.Fprintln(os.Stderr, "  ", k)
		}
		Usage(ErrorCodes["opts"])
	}
	loader, args := Loaders[args[0]](args[1:], conf)

	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "You must supply exactly an input path\n")
		fmt.Fprintf(os.Stderr, "You gave: %v\n", args)
		Usage(ErrorCodes["opts"])
	}
	inputPath := AssertFileOrDirExists(args[0])
	args = args[1:]

	getInput := func() (io.Reader, func(), error) {
		return Input(inputPath)
	}

	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "You must supply a mode\n")
		Usage(ErrorCodes["opts"])
	} else if _, has := modes[args[0]]; !has {
		fmt.Fprintf(os.Stderr, "Unknown mining mode '%v'\n", args[0])
		fmt.Fprintln(os.Stderr, "Modes:")
		for k := range modes {
			fmt.Fprintln(os.Stderr, "  ", k)
		}
		Usage(ErrorCodes["opts"])
	}
	mode, args := modes[args[0]](args[1:], conf)

	fmtr := itemset.Formatter{}
	var rptr miners.Reporter
	if len(args) == 0 {
		rptr, _ = inner(Reporters, DefaultReporter(conf), fmtr, conf)
	} else {
		rptr, args = inner(Reporters, args, fmtr, conf)
	}

	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "unconsumed commandline options: '%v'\n", strings.Join(args, " "))
		Usage(ErrorCodes["opts"])
	}

	errors.Logf("INFO", "Got configuration about to load dataset")
	dt, err := loader.Load(getInput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "There was error during the loading process\n")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		rptr.Close()
		return ExitCode(err)
	}
	defer func() {
		if err := dt.Close(); err != nil {
			errors.Logf("ERROR", "error closing transactions %v", err)
		}
	}()

	errors.Logf("INFO", "loaded data, about to start mining")
	result, mineErr := mode.Mine(dt, rptr)

	code := 0
	if e := mode.Close(); e != nil {
		errors.Logf("ERROR", "error closing %v", e)
		code = ErrorCodes["error"]
	}
	if mineErr != nil {
		fmt.Fprintf(os.Stderr, "There was error during the mining process\n")
		fmt.Fprintf(os.Stderr, "%v\n", mineErr)
		return ExitCode(mineErr)
	}
	Summary(os.Stdout, inputPath, conf, fmtr, result)
	errors.Logf("INFO", "Done!")
	return code
}
