package main

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/appdotbuilder/data-mining-dashboard/cmd"
	"github.com/appdotbuilder/data-mining-dashboard/config"
	"github.com/appdotbuilder/data-mining-dashboard/miners"
	"github.com/appdotbuilder/data-mining-dashboard/miners/apriori"
	"github.com/appdotbuilder/data-mining-dashboard/miners/fpgrowth"
)

func init() {
	cmd.UsageMessage = "basket-mine --help"
	cmd.ExtendedMessage = `
basket-mine - mine frequent itemsets and association rules

$ basket-mine -o <path> --support=<float> --confidence=<float> \
    [Global Options] <miner> [Miner Options] <input-path> \
    [<reporter> [Reporter Options]]

Note: You must supply [Global Options] then <miner> [Miner Options] and
      then the <input-path>. Changes in ordering are not supported.

Note: You may either supply the <input-path> as a regular file, a
      gzipped file (extension '.gz'), or a directory of such files.

Note: If you don't supply a reporter it defaults to 'chain log file'.

Global Options
    -h, --help                view this message
    --miners                  show the available miners
    --reporters               show the available reporters
    -o, --output=<path>       path to output directory (required)
                              NB: will overwrite contents of dir
    -c, --cache=<path>        path to cache directory (optional)
                              NB: will overwrite contents of dir
    --support=<float>         minimum support of itemsets, a fraction
                              in (0, 1] (required)
    --confidence=<float>      minimum confidence of rules, a fraction
                              in (0, 1] (required)
    --skip-log=<level>        don't output the given log level
    --cpu-profile=<path>      write a cpu-profile to this location

Miners
    apriori                   level-wise candidate generation over the
                              full transaction list
    fpgrowth                  recursive conditional pattern base mining
                              over a frequent pattern tree

    Both miners emit the same itemsets; fpgrowth avoids repeated scans
    of the transactions at the cost of building trees.

Input Format
    One transaction per line, items are whitespace separated labels:

        bread milk eggs
        bread butter
        milk eggs butter

Reporters
    chain                     chain several reporters together (end the
                              chain with endchain)
    log                       log each itemset and rule
    file                      write patterns and rules files into the
                              output dir
    unique                    forward only unseen results to an inner
                              reporter
    skip                      forward every n-th result to an inner
                              reporter
    summary                   log support/confidence statistics when
                              the run completes

    log Options
        -l, level=<string>    log level the logger should use
        -p, prefix=<string>   a prefix to put before the log line

    file Options
        -p, patterns=<name>   name of the itemsets file in the output
                              directory (default: patterns)
        -r, rules=<name>      name of the rules file in the output
                              directory (default: rules)

    skip Options
        -n, every=<int>       forward every n-th result (default 2)

    Examples

        $ basket-mine -o /tmp/basket --support=.4 --confidence=.6 \
            apriori ./data/transactions.txt

        $ basket-mine -o /tmp/basket --support=.01 --confidence=.5 \
            fpgrowth ./data/transactions.txt.gz \
            chain log summary file -p freq -r assoc
`
}

func aprioriMiner(argv []string, conf *config.Config) (miners.Miner, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h",
		[]string{
			"help",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}
	return apriori.NewMiner(conf), args
}

func fpgrowthMiner(argv []string, conf *config.Config) (miners.Miner, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h",
		[]string{
			"help",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}
	return fpgrowth.NewMiner(conf), args
}

func main() {
	os.Exit(run())
}

func run() int {
	modes := map[string]cmd.Mode{
		"apriori":  aprioriMiner,
		"fpgrowth": fpgrowthMiner,
	}

	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"ho:c:",
		[]string{
			"help",
			"output=", "cache=",
			"miners", "reporters",
			"support=",
			"confidence=",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "could not process your arguments (perhaps you forgot a miner?)")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	output := ""
	cache := ""
	support := 0.0
	confidence := 0.0
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
			support = cmd.ParseFraction(oa.Arg())
		case "--confidence":
			confidence = cmd.ParseFraction(oa.Arg())
		case "--miners":
			fmt.Fprintln(os.Stderr, "Miners:")
			for k := range modes {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for _, k := range cmd.Reporters {
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

	if support <= 0 {
		fmt.Fprintf(os.Stderr, "You must supply --support in (0, 1]\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if confidence <= 0 {
		fmt.Fprintf(os.Stderr, "You must supply --confidence in (0, 1]\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if output == "" {
		fmt.Fprintf(os.Stderr, "You must supply an output dir (-o)\n")
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

	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "You must supply a miner")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	mode, has := modes[args[0]]
	if !has {
		fmt.Fprintf(os.Stderr, "Unknown miner '%v'\n", args[0])
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	conf := &config.Config{
		Cache:         cache,
		Output:        output,
		MinSupport:    support,
		MinConfidence: confidence,
	}
	miner, rest := mode(args[1:], conf)
	return cmd.Main(rest, conf, miner)
}
