package reporters

import (
	"io"
	"os"
)

import (
	"github.com/appdotbuilder/data-mining-dashboard/config"
	"github.com/appdotbuilder/data-mining-dashboard/rules"
	"github.com/appdotbuilder/data-mining-dashboard/types/itemset"
)

type File struct {
	config     *config.Config
	itemsetFmt itemset.Formatter
	ruleFmt    rules.Formatter
	patterns   io.WriteCloser
	ruleOut    io.WriteCloser
}

func NewFile(c *config.Config, patternsFilename, rulesFilename string) (*File, error) {
	itemsetFmt := itemset.Formatter{}
	ruleFmt := rules.Formatter{}
	patterns, err := os.Create(c.OutputFile(patternsFilename + itemsetFmt.FileExt()))
	if err != nil {
		return nil, err
	}
	ruleOut, err := os.Create(c.OutputFile(rulesFilename + ruleFmt.FileExt()))
	if err != nil {
		patterns.Close()
		return nil, err
	}
	r := &File{
		config:     c,
		itemsetFmt: itemsetFmt,
		ruleFmt:    ruleFmt,
		patterns:   patterns,
		ruleOut:    ruleOut,
	}
	return r, nil
}

func (r *File) Itemset(f *itemset.Frequent) error {
	return r.itemsetFmt.FormatItemset(r.patterns, f)
}

func (r *File) Rule(ru *rules.Rule) error {
	return r.ruleFmt.FormatRule(r.ruleOut, ru)
}

func (r *File) Close() error {
	err := r.patterns.Close()
	if err != nil {
		return err
	}
	return r.ruleOut.Close()
}
