package support

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"math/rand"
)

import (
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/types/itemset"
)

var groceries = [][]string{
	{"bread", "milk"},
	{"bread", "diapers", "beer", "eggs"},
	{"milk", "diapers", "beer", "cola"},
	{"bread", "milk", "diapers", "beer"},
	{"bread", "milk", "diapers", "cola"},
}

func counters() map[string]Counter {
	return map[string]Counter{
		"scan":           Scan{},
		"index":          NewIndex(),
		"parallel-scan":  &Parallel{Workers: 3, Inner: Scan{}},
		"parallel-index": &Parallel{Workers: 4, Inner: NewIndex()},
	}
}

func TestSingletons(x *testing.T) {
	t := assert.New(x)
	dt := itemset.FromSlices(&config.Config{}, groceries)
	level, err := Singletons(dt, 3)
	t.Nil(err)
	t.Equal(4, level.Size())
	for item, expected := range map[string]int{"bread": 4, "milk": 4, "diapers": 4, "beer": 3} {
		count, ok := level.Support(itemset.New(item))
		t.True(ok, item)
		t.Equal(expected, count, item)
	}
	t.False(level.Has(itemset.New("cola")))
	t.False(level.Has(itemset.New("eggs")))
}

func TestSingletonsEmpty(x *testing.T) {
	t := assert.New(x)
	dt := itemset.FromSlices(&config.Config{}, nil)
	level, err := Singletons(dt, 1)
	t.Nil(err)
	t.True(level.Empty())
}

func TestCount(x *testing.T) {
	t := assert.New(x)
	dt := itemset.FromSlices(&config.Config{}, groceries)
	defer dt.Close()
	candidates := []*itemset.Itemset{
		itemset.New("bread", "milk"),
		itemset.New("beer", "diapers"),
		itemset.New("beer", "bread", "diapers"),
		itemset.New("cola", "eggs"),
		itemset.New("bread", "unknown"),
	}
	for name, c := range counters() {
		counts, err := c.Count(dt, candidates)
		t.Nil(err, name)
		t.Equal([]int{3, 3, 2, 0, 0}, counts, name)
	}
}

func TestFilter(x *testing.T) {
	t := assert.New(x)
	dt := itemset.FromSlices(&config.Config{}, groceries)
	defer dt.Close()
	candidates := []*itemset.Itemset{
		itemset.New("bread", "milk"),
		itemset.New("beer", "diapers"),
		itemset.New("beer", "bread", "diapers"),
	}
	for name, c := range counters() {
		level, err := Filter(c, dt, candidates, 3)
		t.Nil(err, name)
		t.Equal(2, level.Size(), name)
		t.True(level.Has(itemset.New("milk", "bread")), name)
		t.False(level.Has(itemset.New("beer", "bread", "diapers")), name)
		level, err = Filter(c, dt, nil, 1)
		t.Nil(err, name)
		t.True(level.Empty(), name)
	}
}

func randomTransactions(r *rand.Rand, n int) [][]string {
	alphabet := []string{"a", "b", "c", "d", "e", "f"}
	records := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		record := make([]string, 0, len(alphabet))
		for _, item := range alphabet {
			if r.Intn(2) == 0 {
				record = append(record, item)
			}
		}
		records = append(records, record)
	}
	return records
}

func bruteForce(records [][]string, c *itemset.Itemset) int {
	count := 0
	for _, record := range records {
		has := make(map[string]bool)
		for _, item := range record {
			has[item] = true
		}
		all := true
		for _, item := range c.Items() {
			if !has[item] {
				all = false
				break
			}
		}
		if all {
			count++
		}
	}
	return count
}

func TestCountersAgreeWithBruteForce(x *testing.T) {
	t := assert.New(x)
	r := rand.New(rand.NewSource(3))
	for trial := 0; trial < 20; trial++ {
		records := randomTransactions(r, 1+r.Intn(40))
		dt := itemset.FromSlices(&config.Config{}, records)
		candidates := make([]*itemset.Itemset, 0, 30)
		for i := 0; i < 30; i++ {
			candidates = append(candidates, itemset.New(randomTransactions(r, 1)[0]...))
		}
		expected := make([]int, 0, len(candidates))
		for _, c := range candidates {
			expected = append(expected, bruteForce(records, c))
		}
		for name, c := range counters() {
			counts, err := c.Count(dt, candidates)
			t.Nil(err, name)
			t.Equal(expected, counts, name)
		}
		t.Nil(dt.Close())
	}
}
