package support

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/apriori/types/itemset"
)

// Counter computes the support of each candidate. The returned counts are
// index aligned with candidates.
type Counter interface {
	Count(dt *itemset.Transactions, candidates []*itemset.Itemset) ([]int, error)
}

// Singletons makes one pass over the transactions counting every distinct
// item and keeps the items with count >= minSupport.
func Singletons(dt *itemset.Transactions, minSupport int) (*itemset.Table, error) {
	vocab := dt.Vocabulary()
	counts := make([]int, len(vocab))
	for i := 0; i < dt.Len(); i++ {
		tx := dt.Tx(i)
		for j := 0; j < tx.Size(); j++ {
			id, _ := dt.ID(tx.Item(j))
			counts[id]++
		}
	}
	level := itemset.NewTable()
	for id, count := range counts {
		if count < minSupport {
			continue
		}
		if err := level.Put(itemset.New(vocab[id]), count); err != nil {
			return nil, err
		}
	}
	errors.Logf("DEBUG", "%d of %d items have support >= %d", level.Size(), len(vocab), minSupport)
	return level, nil
}

// Filter counts the candidates and keeps those with count >= minSupport.
func Filter(counter Counter, dt *itemset.Transactions, candidates []*itemset.Itemset, minSupport int) (*itemset.Table, error) {
	level := itemset.NewTable()
	if len(candidates) == 0 {
		return level, nil
	}
	counts, err := counter.Count(dt, candidates)
	if err != nil {
		return nil, err
	}
	if len(counts) != len(candidates) {
		return nil, errors.Errorf("counter returned %d counts for %d candidates", len(counts), len(candidates))
	}
	for i, c := range candidates {
		if counts[i] < minSupport {
			continue
		}
		if err := level.Put(c, counts[i]); err != nil {
			return nil, err
		}
	}
	return level, nil
}
