package reporters

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"io/ioutil"
	"path/filepath"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/miners"
	"github.com/timtadh/apriori/types/itemset"
)

func patterns() []*miners.Pattern {
	return []*miners.Pattern{
		{Items: itemset.New("a", "b", "c"), Support: 2},
		{Items: itemset.New("d", "e"), Support: 3},
		{Items: itemset.New("c", "b", "a"), Support: 2},
		{Items: itemset.New("f"), Support: 5},
	}
}

func report(t *assert.Assertions, r miners.Reporter) {
	for _, p := range patterns() {
		t.Nil(r.Report(p))
	}
	t.Nil(r.Close())
}

func TestChain(x *testing.T) {
	t := assert.New(x)
	a := &Collector{}
	b := &Collector{}
	report(t, &Chain{Reporters: []miners.Reporter{a, NewLog("DEBUG", "chained"), b}})
	t.Len(a.Patterns, 4)
	t.Equal(a.Patterns, b.Patterns)
}

func TestUnique(x *testing.T) {
	t := assert.New(x)
	c := &Collector{}
	report(t, NewUnique(c))
	t.Len(c.Patterns, 3)
	t.Equal("{a, b, c}", c.Patterns[0].String())
	t.Equal("{f}", c.Patterns[2].String())
}

func TestSkip(x *testing.T) {
	t := assert.New(x)
	c := &Collector{}
	report(t, NewSkip(2, c))
	t.Len(c.Patterns, 2)
	t.Equal("{d, e}", c.Patterns[0].String())
	t.Equal("{f}", c.Patterns[1].String())
}

func TestMinSize(x *testing.T) {
	t := assert.New(x)
	c := &Collector{}
	m, err := NewMinSize(2, c)
	t.Nil(err)
	report(t, m)
	t.Len(c.Patterns, 3)
}

func TestFileAndCount(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{Output: x.TempDir()}
	f, err := NewFile(conf, itemset.Formatter{}, "maximal")
	t.Nil(err)
	count, err := NewCount(conf, "count")
	t.Nil(err)
	report(t, &Chain{Reporters: []miners.Reporter{f, count}})
	t.Equal(4, count.Count())
	data, err := ioutil.ReadFile(filepath.Join(conf.Output, "maximal.items"))
	t.Nil(err)
	t.Equal("{a, b, c}\t2\n{d, e}\t3\n{a, b, c}\t2\n{f}\t5\n", string(data))
	data, err = ioutil.ReadFile(filepath.Join(conf.Output, "count"))
	t.Nil(err)
	t.Equal("4\n", string(data))
}

func TestDir(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{Output: x.TempDir()}
	d, err := NewDir(conf, itemset.Formatter{}, "patterns")
	t.Nil(err)
	report(t, d)
	data, err := ioutil.ReadFile(filepath.Join(conf.Output, "patterns", "count"))
	t.Nil(err)
	t.Equal("4\n", string(data))
	data, err = ioutil.ReadFile(filepath.Join(conf.Output, "patterns", "1", "pattern.items"))
	t.Nil(err)
	t.Equal("d\ne\n", string(data))
	data, err = ioutil.ReadFile(filepath.Join(conf.Output, "patterns", "1", "support"))
	t.Nil(err)
	t.Equal("3\n", string(data))
}
