package cmd

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/appdotbuilder/data-mining-dashboard/config"
	"github.com/appdotbuilder/data-mining-dashboard/miners"
	"github.com/appdotbuilder/data-mining-dashboard/miners/reporters"
)

var Reporters = []string{
	"chain",
	"log",
	"file",
	"unique",
	"skip",
	"summary",
}

// ParseReporter parses the reporter section of the command line. With
// no arguments it falls back to the default "chain log file".
func ParseReporter(args []string, conf *config.Config) (miners.Reporter, error) {
	if len(args) == 0 {
		return defaultReporter(conf)
	}
	rptr, rest, err := parseReporter(args, conf)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, errors.Errorf("unconsumed reporter arguments %v", rest)
	}
	return rptr, nil
}

func defaultReporter(conf *config.Config) (miners.Reporter, error) {
	file, err := reporters.NewFile(conf, "patterns", "rules")
	if err != nil {
		return nil, err
	}
	return &reporters.Chain{Reporters: []miners.Reporter{reporters.NewLog("", ""), file}}, nil
}

func parseReporter(args []string, conf *config.Config) (miners.Reporter, []string, error) {
	if len(args) == 0 {
		return nil, nil, errors.Errorf("expected a reporter name")
	}
	name := args[0]
	argv := args[1:]
	switch name {
	case "chain":
		rptrs := make([]miners.Reporter, 0, 2)
		for len(argv) > 0 && argv[0] != "endchain" {
			var rptr miners.Reporter
			var err error
			rptr, argv, err = parseReporter(argv, conf)
			if err != nil {
				return nil, nil, err
			}
			rptrs = append(rptrs, rptr)
		}
		if len(argv) > 0 {
			argv = argv[1:]
		}
		return &reporters.Chain{Reporters: rptrs}, argv, nil
	case "log":
		rest, optargs, err := getopt.GetOpt(argv, "l:p:", []string{"level=", "prefix="})
		if err != nil {
			return nil, nil, err
		}
		level := ""
		prefix := ""
		for _, oa := range optargs {
			switch oa.Opt() {
			case "-l", "--level":
				level = oa.Arg()
			case "-p", "--prefix":
				prefix = oa.Arg()
			}
		}
		return reporters.NewLog(level, prefix), rest, nil
	case "file":
		rest, optargs, err := getopt.GetOpt(argv, "p:r:", []string{"patterns=", "rules="})
		if err != nil {
			return nil, nil, err
		}
		patterns := "patterns"
		ruleFile := "rules"
		for _, oa := range optargs {
			switch oa.Opt() {
			case "-p", "--patterns":
				patterns = oa.Arg()
			case "-r", "--rules":
				ruleFile = oa.Arg()
			}
		}
		file, err := reporters.NewFile(conf, patterns, ruleFile)
		if err != nil {
			return nil, nil, err
		}
		return file, rest, nil
	case "unique":
		inner, rest, err := parseReporter(argv, conf)
		if err != nil {
			return nil, nil, err
		}
		return reporters.NewUnique(inner), rest, nil
	case "skip":
		rest, optargs, err := getopt.GetOpt(argv, "n:", []string{"every="})
		if err != nil {
			return nil, nil, err
		}
		every := 2
		for _, oa := range optargs {
			switch oa.Opt() {
			case "-n", "--every":
				every = ParseInt(oa.Arg())
			}
		}
		inner, rest, err := parseReporter(rest, conf)
		if err != nil {
			return nil, nil, err
		}
		return reporters.NewSkip(every, inner), rest, nil
	case "summary":
		return reporters.NewSummary(), argv, nil
	}
	return nil, nil, errors.Errorf("unknown reporter '%v'", name)
}
