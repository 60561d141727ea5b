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
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/apriori/cmd"
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/lattice"
	"github.com/timtadh/apriori/miners"
	"github.com/timtadh/apriori/miners/apriori"
	"github.com/timtadh/apriori/support"
)

func init() {
	cmd.UsageMessage = "apriori --help"
	cmd.ExtendedMessage = `
apriori - mine maximal frequent itemsets

$ apriori --support=<int> [Global Options] \
    <loader> [Loader Options] <input-path> \
    <mode> [Mode Options] \
    [<reporter> [Reporter Options]]

Note: You must supply [Global Options] then [<loader> [Loader Options]] then
      <input-path> then [<mode> [Mode Options]] and finally the reporters.
      Changes in ordering are not supported.

Note: You may either supply the <input-path> as a regular file, a gzipped
      file or a directory. If supplying a gzip file the file extension must
      be '.gz'. Every file in a directory is read in order.

Note: If you don't supply a reporter by default it will use 'log', or
      'chain log file' when an output directory is given.

Note: The support is an absolute count of transactions, not a fraction.


Global Options
    -h, --help                view this message
    --loaders                 show the available loaders
    --modes                   show the available modes
    --reporters               show the available reporters
    -o, --output=<path>       path to output directory (optional)
                              NB: will overwrite contents of dir
    -c, --cache=<path>        path to cache directory (optional)
                              NB: will overwrite contents of dir
                              the inverted index is kept here, in memory
                              if not given
    --support=<int>           minimum support count (required, >= 1)
    -p, --parallelism=<int>   workers for support counting
                              0 (default) is 1 worker, -1 is one per cpu
    --timeout=<duration>      give up between levels after this long
                              (eg. 30s, 10m)
    --skip-log=<level>        don't output the given log level
    --cpu-profile=<path>      write a cpu-profile to this file


Loaders

    csv                       one transaction per record, every field is
                              an item. empty fields are dropped.
      -d, --delimiter=<char>  field delimiter (default ',', also tab, space)

    dat                       one transaction per line, items separated
                              by white space


Modes

    apriori                   level-wise candidate generation with subset
                              pruning, then maximal itemset extraction
      -j, --join=<join>       pairwise (default) or prefix
      -s, --support-counter=<counter>
                              scan (default) or index
      -m, --maximal=<method>  linear (default) or indexed


Reporters

    log                       log each maximal itemset
      -l, --level=<level>     log level (default INFO)
      -p, --prefix=<str>      prefix for each line

    file                      write maximal itemsets and supports to a file
                              in the output dir
      -p, --patterns=<name>   file name (default maximal), .items is added

    dir                       write each maximal itemset to its own dir
      -d, --dir-name=<name>   (default patterns)

    count                     write the number of maximal itemsets
      -f, --filename=<name>   (default count)

    chain <reporter> [<reporter> ...] [endchain]
                              report to every reporter in the chain

    unique <reporter>         drop itemsets already reported

    skip <reporter>           report every nth itemset
      -n, --skip=<int>

    min-size <reporter>       only report itemsets with at least n items
      -s, --size=<int>

    heap-profile              write a heap profile on every report
      -p, --profile=<path>


Examples

    $ apriori --support=3 csv groceries.csv apriori

    $ apriori -o /tmp/out --support=2 -p -1 dat retail.dat.gz apriori -j prefix -s index \
        chain log file count
`
}

func aprioriMode(argv []string, conf *config.Config) (miners.Miner, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hj:s:m:",
		[]string{
			"help",
			"join=",
			"support-counter=",
			"maximal=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	miner := apriori.NewMiner(conf)
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-j", "--join":
			switch oa.Arg() {
			case "pairwise":
				miner.Joiner = lattice.PairwiseJoin{}
			case "prefix":
				miner.Joiner = lattice.PrefixJoin{}
			default:
				fmt.Fprintf(os.Stderr, "Unknown join '%v'\n", oa.Arg())
				fmt.Fprintf(os.Stderr, "joins: pairwise, prefix\n")
				cmd.Usage(cmd.ErrorCodes["opts"])
			}
		case "-s", "--support-counter":
			switch oa.Arg() {
			case "scan":
				miner.Counter = apriori.Parallelize(conf, support.Scan{})
			case "index":
				miner.Counter = apriori.Parallelize(conf, support.NewIndex())
			default:
				fmt.Fprintf(os.Stderr, "Unknown support counter '%v'\n", oa.Arg())
				fmt.Fprintf(os.Stderr, "counters: scan, index\n")
				cmd.Usage(cmd.ErrorCodes["opts"])
			}
		case "-m", "--maximal":
			switch oa.Arg() {
			case "linear":
				miner.Extractor = lattice.Linear{}
			case "indexed":
				miner.Extractor = lattice.Indexed{}
			default:
				fmt.Fprintf(os.Stderr, "Unknown maximal extractor '%v'\n", oa.Arg())
				fmt.Fprintf(os.Stderr, "extractors: linear, indexed\n")
				cmd.Usage(cmd.ErrorCodes["opts"])
			}
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}
	return miner, args
}

func main() {
	os.Exit(run())
}

func run() int {
	modes := map[string]cmd.Mode{
		"apriori": aprioriMode,
	}

	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"ho:c:p:",
		[]string{
			"help",
			"output=", "cache=",
			"loaders", "modes", "reporters",
			"support=",
			"parallelism=",
			"timeout=",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "could not process your arguments (perhaps you forgot a mode?) try:")
		fmt.Fprintf(os.Stderr, "$ %v %v apriori\n", os.Args[0], strings.Join(os.Args[1:], " "))
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	output := ""
	cache := ""
	minSupport := 0
	parallelism := 0
	timeout := 0 * time.Second
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-o", "--output":
			output = cmd.EmptyDir(oa.Arg())
		case "-c", "--cache":
			cache = cmd.EmptyDir(oa.Arg())
		case "--support":
			minSupport = cmd.ParseInt(oa.Arg())
		case "-p", "--parallelism":
			parallelism = cmd.ParseInt(oa.Arg())
		case "--timeout":
			timeout = cmd.ParseDuration(oa.Arg())
		case "--loaders":
			fmt.Fprintln(os.Stderr, "Loaders:")
			for k := range cmd.Loaders {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--modes":
			fmt.Fprintln(os.Stderr, "Modes:")
			for k := range modes {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for k := range cmd.Reporters {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if minSupport <= 0 {
		fmt.Fprintf(os.Stderr, "Support <= 0, must be > 0\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if parallelism < -1 {
		fmt.Fprintf(os.Stderr, "Parallelism < -1, must be -1 (one per cpu), 0 or a worker count\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if timeout < 0 {
		fmt.Fprintf(os.Stderr, "Timeout < 0, must be >= 0\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
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
		Cache:       cache,
		Output:      output,
		Support:     minSupport,
		Parallelism: parallelism,
		Timeout:     timeout,
	}
	return cmd.Main(args, conf, modes)
}
