package support

import (
	"sync"
)

import (
	"github.com/timtadh/data-structures/errors"
	"golang.org/x/sync/errgroup"
)

import (
	"github.com/timtadh/apriori/types/itemset"
)

// Scan tests every candidate against every transaction.
type Scan struct{}

func (Scan) Count(dt *itemset.Transactions, candidates []*itemset.Itemset) ([]int, error) {
	counts := make([]int, len(candidates))
	for i := 0; i < dt.Len(); i++ {
		tx := dt.Tx(i)
		for j, c := range candidates {
			if c.Size() <= tx.Size() && c.Subset(tx) {
				counts[j]++
			}
		}
	}
	return counts, nil
}

// Index intersects the postings lists of each candidate's items. Postings
// are read from the transactions' inverted index once per item and cached
// for the lifetime of the counter, so an Index must only be used with one
// transaction collection.
type Index struct {
	lock  sync.Mutex
	cache map[string][]int32
}

func NewIndex() *Index {
	return &Index{cache: make(map[string][]int32)}
}

func (x *Index) Count(dt *itemset.Transactions, candidates []*itemset.Itemset) ([]int, error) {
	counts := make([]int, len(candidates))
	for i, c := range candidates {
		if c.Size() == 0 {
			counts[i] = dt.Len()
			continue
		}
		txs, err := x.postings(dt, c.Item(0))
		if err != nil {
			return nil, err
		}
		for j := 1; j < c.Size() && len(txs) > 0; j++ {
			next, err := x.postings(dt, c.Item(j))
			if err != nil {
				return nil, err
			}
			txs = intersect(txs, next)
		}
		counts[i] = len(txs)
	}
	return counts, nil
}

func (x *Index) postings(dt *itemset.Transactions, item string) ([]int32, error) {
	x.lock.Lock()
	defer x.lock.Unlock()
	if x.cache == nil {
		x.cache = make(map[string][]int32)
	}
	if txs, has := x.cache[item]; has {
		return txs, nil
	}
	txs, err := dt.Postings(item)
	if err != nil {
		return nil, err
	}
	x.cache[item] = txs
	return txs, nil
}

func intersect(a, b []int32) []int32 {
	out := make([]int32, 0, len(a))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// Parallel splits the candidates into Workers chunks and counts the chunks
// concurrently with Inner. Each chunk fills its own range of the result.
type Parallel struct {
	Workers int
	Inner   Counter
}

func (p *Parallel) Count(dt *itemset.Transactions, candidates []*itemset.Itemset) ([]int, error) {
	workers := p.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}
	if workers <= 1 {
		return p.Inner.Count(dt, candidates)
	}
	counts := make([]int, len(candidates))
	chunk := (len(candidates) + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < len(candidates); start += chunk {
		end := start + chunk
		if end > len(candidates) {
			end = len(candidates)
		}
		start, end := start, end
		g.Go(func() error {
			part, err := p.Inner.Count(dt, candidates[start:end])
			if err != nil {
				return err
			}
			if len(part) != end-start {
				return errors.Errorf("inner counter returned %d counts for %d candidates", len(part), end-start)
			}
			copy(counts[start:end], part)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}
