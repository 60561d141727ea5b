package reporters

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/miners"
)

type Log struct {
	level  string
	prefix string
	count  int
}

func NewLog(level, prefix string) *Log {
	if level == "" {
		level = "INFO"
	}
	return &Log{level: level, prefix: prefix}
}

func (lr *Log) Report(p *miners.Pattern) error {
	lr.count++
	if lr.prefix != "" {
		errors.Logf(lr.level, "%s %v %v (support = %d)", lr.prefix, lr.count, p, p.Support)
	} else {
		errors.Logf(lr.level, "%v %v (support = %d)", lr.count, p, p.Support)
	}
	return nil
}

func (lr *Log) Close() error {
	return nil
}
