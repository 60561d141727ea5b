package reporters

import (
	"fmt"
	"os"
	"path/filepath"
)

import ()

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/miners"
	"github.com/timtadh/apriori/types/itemset"
)

// Dir writes each pattern into its own numbered directory under dirname,
// plus a count file on Close.
type Dir struct {
	config *config.Config
	fmt    itemset.Formatter
	dir    string
	count  int
}

func NewDir(c *config.Config, fmt itemset.Formatter, dirname string) (*Dir, error) {
	patterns := c.OutputFile(dirname)
	err := os.MkdirAll(patterns, 0775)
	if err != nil {
		return nil, err
	}
	r := &Dir{
		config: c,
		fmt:    fmt,
		dir:    patterns,
	}
	return r, nil
}

func (r *Dir) Report(p *miners.Pattern) error {
	dir := filepath.Join(r.dir, fmt.Sprintf("%d", r.count))
	err := os.MkdirAll(dir, 0775)
	if err != nil {
		return err
	}
	r.count++
	name, err := os.Create(filepath.Join(dir, "pattern.name"))
	if err != nil {
		return err
	}
	defer name.Close()
	fmt.Fprintf(name, "%s\n", r.fmt.PatternName(p.Items))
	pattern, err := os.Create(filepath.Join(dir, "pattern"+r.fmt.FileExt()))
	if err != nil {
		return err
	}
	defer pattern.Close()
	for _, item := range p.Items.Items() {
		fmt.Fprintf(pattern, "%s\n", item)
	}
	support, err := os.Create(filepath.Join(dir, "support"))
	if err != nil {
		return err
	}
	defer support.Close()
	fmt.Fprintf(support, "%d\n", p.Support)
	return nil
}

func (r *Dir) Close() error {
	count, err := os.Create(filepath.Join(r.dir, "count"))
	if err != nil {
		return err
	}
	defer count.Close()
	fmt.Fprintf(count, "%d\n", r.count)
	return nil
}
