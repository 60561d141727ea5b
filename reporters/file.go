package reporters

import (
	"io"
	"os"
)

import ()

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/miners"
	"github.com/timtadh/apriori/types/itemset"
)

// File writes every pattern and its support to a file in the output
// directory, one per line.
type File struct {
	config   *config.Config
	fmt      itemset.Formatter
	patterns io.WriteCloser
}

func NewFile(c *config.Config, fmt itemset.Formatter, patternsFilename string) (*File, error) {
	patterns, err := os.Create(c.OutputFile(patternsFilename + fmt.FileExt()))
	if err != nil {
		return nil, err
	}
	r := &File{
		config:   c,
		fmt:      fmt,
		patterns: patterns,
	}
	return r, nil
}

func (r *File) Report(p *miners.Pattern) error {
	return r.fmt.FormatPattern(r.patterns, p.Items, p.Support)
}

func (r *File) Close() error {
	return r.patterns.Close()
}
