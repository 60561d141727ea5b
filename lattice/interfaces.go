package lattice

import (
	"github.com/timtadh/apriori/types/itemset"
)

// Joiner generates the size k candidates from the frequent itemsets of
// size k-1. Every candidate it returns has all of its size k-1 subsets in
// prev.
type Joiner interface {
	Join(prev *itemset.Table, k int) ([]*itemset.Itemset, error)
}

// Extractor reduces a collection of frequent itemsets to those not
// contained in a different member of the collection.
type Extractor interface {
	Extract(frequent []*itemset.Itemset) []*itemset.Itemset
}
