package apriori

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"math/rand"
	"time"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/lattice"
	"github.com/timtadh/apriori/miners"
	"github.com/timtadh/apriori/reporters"
	"github.com/timtadh/apriori/support"
	"github.com/timtadh/apriori/types/itemset"
)

func variants(minSupport int) map[string]*Miner {
	conf := &config.Config{Support: minSupport}
	par := &config.Config{Support: minSupport, Parallelism: 3}
	prefix := NewMiner(conf)
	prefix.Joiner = lattice.PrefixJoin{}
	prefix.Extractor = lattice.Indexed{}
	index := NewMiner(conf)
	index.Counter = support.NewIndex()
	parIndex := NewMiner(par)
	parIndex.Counter = Parallelize(par, support.NewIndex())
	parIndex.Joiner = lattice.PrefixJoin{}
	return map[string]*Miner{
		"default":        NewMiner(conf),
		"prefix-indexed": prefix,
		"index":          index,
		"parallel-scan":  NewMiner(par),
		"parallel-index": parIndex,
	}
}

func mine(t *assert.Assertions, m *Miner, records [][]string) (*miners.Result, []*miners.Pattern) {
	dt := itemset.FromSlices(m.Config, records)
	defer dt.Close()
	c := &reporters.Collector{}
	r, err := m.Mine(dt, c)
	t.Nil(err)
	t.Nil(m.Close())
	return r, c.Patterns
}

func names(r *miners.Result) []string {
	n := make([]string, 0, len(r.Maximal))
	for _, p := range r.Maximal {
		n = append(n, p.String())
	}
	return n
}

func TestOnlyFrequentSingleton(x *testing.T) {
	t := assert.New(x)
	records := [][]string{{"a", "b", "c"}, {"a", "b"}, {"a", "c"}, {"a"}}
	for name, m := range variants(3) {
		r, reported := mine(t, m, records)
		t.Equal([]string{"{a}"}, names(r), name)
		t.Equal(4, r.Maximal[0].Support, name)
		t.Equal(1, r.Frequent, name)
		t.Equal(1, r.Levels, name)
		t.Equal(r.Maximal, reported, name)
	}
}

func TestPairIsMaximal(x *testing.T) {
	t := assert.New(x)
	records := [][]string{{"a", "b"}, {"a", "b"}, {"a", "c"}}
	for name, m := range variants(2) {
		r, _ := mine(t, m, records)
		t.Equal([]string{"{a, b}"}, names(r), name)
		t.Equal(2, r.Maximal[0].Support, name)
		t.Equal(3, r.Frequent, name)
		t.Equal(2, r.Levels, name)
	}
}

func TestEmptyCollection(x *testing.T) {
	t := assert.New(x)
	for name, m := range variants(1) {
		r, reported := mine(t, m, nil)
		t.Empty(r.Maximal, name)
		t.Empty(reported, name)
		t.Equal(0, r.Frequent, name)
		t.Equal(0, r.Levels, name)
		t.True(r.Seconds() >= 0, name)
	}
}

func TestSupportAboveCollectionSize(x *testing.T) {
	t := assert.New(x)
	records := [][]string{{"a", "b"}, {"a", "b"}, {"a", "b", "c"}}
	for name, m := range variants(4) {
		r, _ := mine(t, m, records)
		t.Empty(r.Maximal, name)
	}
}

func TestInvalidSupport(x *testing.T) {
	t := assert.New(x)
	for _, s := range []int{0, -1} {
		m := NewMiner(&config.Config{Support: s})
		dt := itemset.FromSlices(m.Config, [][]string{{"a"}})
		_, err := m.Mine(dt, &reporters.Collector{})
		_, ok := err.(*itemset.InvalidInput)
		t.True(ok, "%T %v", err, err)
	}
}

func TestTimeout(x *testing.T) {
	t := assert.New(x)
	m := NewMiner(&config.Config{Support: 1, Timeout: time.Nanosecond})
	dt := itemset.FromSlices(m.Config, [][]string{{"a", "b"}, {"a", "b", "c"}})
	c := &reporters.Collector{}
	r, err := m.Mine(dt, c)
	t.Nil(r)
	_, ok := err.(*Timeout)
	t.True(ok, "%T %v", err, err)
	t.Empty(c.Patterns)
}

func supportOf(records [][]string, s *itemset.Itemset) int {
	count := 0
	for _, record := range records {
		if s.Subset(itemset.New(record...)) {
			count++
		}
	}
	return count
}

// allFrequent enumerates every non-empty subset of the vocabulary.
func allFrequent(records [][]string, alphabet []string, minSupport int) []*itemset.Itemset {
	frequent := make([]*itemset.Itemset, 0, 1<<uint(len(alphabet)))
	for mask := 1; mask < 1<<uint(len(alphabet)); mask++ {
		items := make([]string, 0, len(alphabet))
		for i, item := range alphabet {
			if mask&(1<<uint(i)) != 0 {
				items = append(items, item)
			}
		}
		s := itemset.New(items...)
		if supportOf(records, s) >= minSupport {
			frequent = append(frequent, s)
		}
	}
	return frequent
}

func TestAgainstBruteForce(x *testing.T) {
	t := assert.New(x)
	alphabet := []string{"a", "b", "c", "d", "e"}
	r := rand.New(rand.NewSource(5))
	for trial := 0; trial < 15; trial++ {
		n := 5 + r.Intn(15)
		records := make([][]string, 0, n)
		for i := 0; i < n; i++ {
			record := make([]string, 0, len(alphabet))
			for _, item := range alphabet {
				if r.Intn(3) != 0 {
					record = append(record, item)
				}
			}
			records = append(records, record)
		}
		minSupport := 1 + r.Intn(6)
		frequent := allFrequent(records, alphabet, minSupport)
		for name, m := range variants(minSupport) {
			result, _ := mine(t, m, records)
			t.Equal(len(frequent), result.Frequent, name)
			for _, p := range result.Maximal {
				t.Equal(supportOf(records, p.Items), p.Support, name)
				t.True(p.Support >= minSupport, name)
			}
			for _, s := range frequent {
				covered := false
				for _, p := range result.Maximal {
					if s.Subset(p.Items) {
						covered = true
						break
					}
				}
				t.True(covered, "%v %v not covered", name, s)
			}
			for i, a := range result.Maximal {
				for j, b := range result.Maximal {
					if i != j {
						t.False(a.Items.Subset(b.Items), name)
					}
				}
			}
		}
	}
}
