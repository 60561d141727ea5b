package lattice

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/set"
)

import (
	"github.com/timtadh/apriori/types/itemset"
)

// PairwiseJoin unions every unordered pair of size k-1 frequent itemsets
// and keeps the unions of size k whose immediate subsets are all frequent.
type PairwiseJoin struct{}

func (PairwiseJoin) Join(prev *itemset.Table, k int) ([]*itemset.Itemset, error) {
	if k < 2 {
		return nil, errors.Errorf("cannot join to level %d, joins start at level 2", k)
	}
	sets := prev.Itemsets()
	candidates := set.NewSortedSet(len(sets))
	pruned := 0
	for i := 0; i < len(sets); i++ {
		for j := i + 1; j < len(sets); j++ {
			u := sets[i].Union(sets[j])
			if u.Size() != k || candidates.Has(u) {
				continue
			}
			if HasInfrequentSubset(u, prev) {
				pruned++
				continue
			}
			if err := candidates.Add(u); err != nil {
				return nil, err
			}
		}
	}
	errors.Logf("DEBUG", "pairwise join level %d: %d candidates, pruned %d", k, candidates.Size(), pruned)
	return collect(candidates), nil
}

// PrefixJoin only joins itemsets that agree on their first k-2 items. With
// the subset pruning applied it yields exactly the candidates of
// PairwiseJoin.
type PrefixJoin struct{}

func (PrefixJoin) Join(prev *itemset.Table, k int) ([]*itemset.Itemset, error) {
	if k < 2 {
		return nil, errors.Errorf("cannot join to level %d, joins start at level 2", k)
	}
	sets := prev.Itemsets()
	candidates := make([]*itemset.Itemset, 0, len(sets))
	pruned := 0
	for i := 0; i < len(sets); i++ {
		for j := i + 1; j < len(sets) && sets[i].SharesPrefix(sets[j], k-2); j++ {
			u := sets[i].Union(sets[j])
			if u.Size() != k {
				continue
			}
			if HasInfrequentSubset(u, prev) {
				pruned++
				continue
			}
			candidates = append(candidates, u)
		}
	}
	itemset.Sort(candidates)
	errors.Logf("DEBUG", "prefix join level %d: %d candidates, pruned %d", k, len(candidates), pruned)
	return candidates, nil
}

// HasInfrequentSubset reports whether one of the immediate subsets of
// candidate is missing from frequent.
func HasInfrequentSubset(candidate *itemset.Itemset, frequent *itemset.Table) bool {
	for i := 0; i < candidate.Size(); i++ {
		if !frequent.Has(candidate.Without(i)) {
			return true
		}
	}
	return false
}

func collect(s *set.SortedSet) []*itemset.Itemset {
	sets := make([]*itemset.Itemset, 0, s.Size())
	for item, next := s.Items()(); next != nil; item, next = next() {
		sets = append(sets, item.(*itemset.Itemset))
	}
	return sets
}
