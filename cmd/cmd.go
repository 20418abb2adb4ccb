package cmd

import (
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/appdotbuilder/data-mining-dashboard/config"
	"github.com/appdotbuilder/data-mining-dashboard/miners"
	"github.com/appdotbuilder/data-mining-dashboard/rules"
	"github.com/appdotbuilder/data-mining-dashboard/types/itemset"
)

var ErrorCodes map[string]int = map[string]int{
	"usage":    0,
	"version":  2,
	"opts":     3,
	"badint":   5,
	"badfloat": 6,
	"baddir":   6,
	"badfile":  7,
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

func Input(input_path string) (reader io.Reader, closeall func()) {
	stat, err := os.Stat(input_path)
	if err != nil {
		panic(err)
	}
	if stat.IsDir() {
		return InputDir(input_path)
	}
	return InputFile(input_path)
}

func InputFile(input_path string) (reader io.Reader, closeall func()) {
	freader, err := os.Open(input_path)
	if err != nil {
		panic(err)
	}
	if strings.HasSuffix(input_path, ".gz") {
		greader, err := gzip.NewReader(freader)
		if err != nil {
			panic(err)
		}
		return greader, func() {
			greader.Close()
			freader.Close()
		}
	}
	return freader, func() {
		freader.Close()
	}
}

func InputDir(input_dir string) (reader io.Reader, closeall func()) {
	var readers []io.Reader
	var closers []func()
	dir, err := os.ReadDir(input_dir)
	if err != nil {
		panic(err)
	}
	for _, info := range dir {
		if info.IsDir() {
			continue
		}
		creader, closer := InputFile(path.Join(input_dir, info.Name()))
		readers = append(readers, creader)
		closers = append(closers, closer)
	}
	reader = io.MultiReader(readers...)
	return reader, func() {
		for _, closer := range closers {
			closer()
		}
	}
}

func ParseInt(str string) int {
	i, err := strconv.Atoi(str)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected an int\n", str)
		Usage(ErrorCodes["badint"])
	}
	return i
}

func ParseFloat(str string) float64 {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected a float\n", str)
		Usage(ErrorCodes["badfloat"])
	}
	return f
}

// ParseFraction parses a threshold which must land in (0, 1].
func ParseFraction(str string) float64 {
	f := ParseFloat(str)
	if f <= 0 || f > 1 {
		fmt.Fprintf(os.Stderr, "Expected a fraction in (0, 1], got '%v'\n", str)
		Usage(ErrorCodes["badfloat"])
	}
	return f
}

func AssertDir(dir string) string {
	dir = path.Clean(dir)
	fi, err := os.Stat(dir)
	if err != nil && os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0775)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v", err)
			Usage(ErrorCodes["baddir"])
		}
		return dir
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "%v", err)
		Usage(ErrorCodes["baddir"])
	}
	if !fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Passed in file was not a directory, %s", dir)
		Usage(ErrorCodes["baddir"])
	}
	return dir
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
		fmt.Fprintf(os.Stderr, "%v", err)
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
		fmt.Fprintf(os.Stderr, "%v", err)
		Usage(ErrorCodes["badfile"])
	} else if fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Passed in file was a directory, %s", fname)
		Usage(ErrorCodes["badfile"])
	}
	return fname
}

type Mode func(argv []string, conf *config.Config) (miners.Miner, []string)

// Main drives one run: load the transactions from args[0], mine them,
// derive the rules, and hand both result sets to the reporter parsed
// from the remaining args.
func Main(args []string, conf *config.Config, miner miners.Miner) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "No input path supplied")
		Usage(ErrorCodes["opts"])
	}
	inputPath := AssertFileOrDirExists(args[0])
	reporter, err := ParseReporter(args[1:], conf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}

	reader, closer := Input(inputPath)
	txs, err := itemset.Load(reader)
	closer()
	if err != nil {
		errors.Logf("ERROR", "could not load %v: %v", inputPath, err)
		return 1
	}
	errors.Logf("INFO", "loaded %v transactions from %v", len(txs), inputPath)

	freq, err := miner.Mine(txs)
	if err != nil {
		errors.Logf("ERROR", "%v mining failed: %v", miner.Name(), err)
		return 1
	}
	errors.Logf("INFO", "%v found %v frequent itemsets", miner.Name(), len(freq))

	supports, err := conf.BytesFloatMultiMap("supports")
	if err != nil {
		errors.Logf("ERROR", "could not allocate the support index: %v", err)
		return 1
	}
	index, err := rules.NewStoreIndex(supports, freq)
	if err != nil {
		errors.Logf("ERROR", "could not build the support index: %v", err)
		supports.Delete()
		return 1
	}
	derived, err := rules.Generate(freq, conf.MinConfidence, index)
	if err != nil {
		errors.Logf("ERROR", "rule generation failed: %v", err)
		index.Close()
		return 1
	}
	errors.Logf("INFO", "derived %v rules at confidence >= %v", len(derived), conf.MinConfidence)
	if err := index.Close(); err != nil {
		errors.Logf("ERROR", "could not close the support index: %v", err)
		return 1
	}

	for i := range freq {
		if err := reporter.Itemset(&freq[i]); err != nil {
			errors.Logf("ERROR", "reporting failed: %v", err)
			return 1
		}
	}
	for i := range derived {
		if err := reporter.Rule(&derived[i]); err != nil {
			errors.Logf("ERROR", "reporting failed: %v", err)
			return 1
		}
	}
	if err := reporter.Close(); err != nil {
		errors.Logf("ERROR", "reporting failed: %v", err)
		return 1
	}
	return 0
}
