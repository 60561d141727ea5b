package miners

import (
	"time"
)

import (
	"github.com/timtadh/apriori/types/itemset"
)

// Note: the miner's Close function should close the reporter passed into
// Mine. The transactions belong to the caller.
type Miner interface {
	Mine(*itemset.Transactions, Reporter) (*Result, error)
	Close() error
}

type Reporter interface {
	Report(*Pattern) error
	Close() error
}

// Pattern is a maximal frequent itemset and its support count.
type Pattern struct {
	Items   *itemset.Itemset
	Support int
}

func (p *Pattern) String() string {
	return p.Items.String()
}

// Label identifies the pattern by its items.
func (p *Pattern) Label() []byte {
	return p.Items.Label()
}

// Result is the outcome of a complete run. Maximal is sorted by decreasing
// size, ties broken item by item. An empty Maximal is a successful run.
type Result struct {
	Maximal  []*Pattern
	Frequent int
	Levels   int
	Elapsed  time.Duration
}

func (r *Result) Itemsets() []*itemset.Itemset {
	sets := make([]*itemset.Itemset, 0, len(r.Maximal))
	for _, p := range r.Maximal {
		sets = append(sets, p.Items)
	}
	return sets
}

// Seconds is the mining wall-clock time.
func (r *Result) Seconds() float64 {
	return r.Elapsed.Seconds()
}
