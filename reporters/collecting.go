package reporters

import ()

import ()

import (
	"github.com/timtadh/apriori/miners"
)

type Collector struct {
	Patterns []*miners.Pattern
}

func (c *Collector) Report(p *miners.Pattern) error {
	c.Patterns = append(c.Patterns, p)
	return nil
}

func (c *Collector) Close() error {
	return nil
}
