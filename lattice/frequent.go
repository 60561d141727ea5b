package lattice

import (
	"github.com/timtadh/apriori/types/itemset"
)

// Frequent accumulates the frequent itemset tables of every level mined so
// far. It is a value: Fold returns a new accumulator and leaves the
// receiver untouched.
type Frequent struct {
	levels []*itemset.Table
}

func (f Frequent) Fold(level *itemset.Table) Frequent {
	levels := make([]*itemset.Table, len(f.levels), len(f.levels)+1)
	copy(levels, f.levels)
	return Frequent{levels: append(levels, level)}
}

// Levels is the number of levels folded in.
func (f Frequent) Levels() int {
	return len(f.levels)
}

// Level returns the table of the size k itemsets, k counting from 1.
func (f Frequent) Level(k int) *itemset.Table {
	if k < 1 || k > len(f.levels) {
		return itemset.NewTable()
	}
	return f.levels[k-1]
}

// Len is the total number of frequent itemsets.
func (f Frequent) Len() int {
	n := 0
	for _, level := range f.levels {
		n += level.Size()
	}
	return n
}

// Itemsets lists every frequent itemset, level by level.
func (f Frequent) Itemsets() []*itemset.Itemset {
	sets := make([]*itemset.Itemset, 0, f.Len())
	for _, level := range f.levels {
		sets = append(sets, level.Itemsets()...)
	}
	return sets
}

func (f Frequent) Support(s *itemset.Itemset) (int, bool) {
	return f.Level(s.Size()).Support(s)
}
